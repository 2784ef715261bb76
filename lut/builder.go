package lut

import (
	"context"
	"fmt"
	"math"

	"flavorize/cielab"
	"flavorize/flavor"
	"flavorize/parallel"
)

// Build computes the full lookup table for a flavor under the given
// algorithm. The 256 red planes of the RGB cube are independent, so they
// are fanned out across the worker pool; cancellation is observed at the
// start of each plane.
//
// The build is pure computation over a closed input domain and cannot fail
// other than by cancellation.
func Build(ctx context.Context, f *flavor.Flavor, algo Algorithm) (*Lut, error) {
	pix := make([]uint8, TableSize)
	m := newMatcher(f, algo)

	pool := parallel.Start(0)
	for r := 0; r < 256; r++ {
		r := r
		if ctx.Err() != nil {
			break
		}
		pool.Do(func() { m.buildPlane(pix, uint8(r)) })
	}
	pool.Wait()

	if err := context.Cause(ctx); err != nil {
		return nil, fmt.Errorf("table build for %s/%s interrupted: %w", f.Name, algo, err)
	}

	return New(pix), nil
}

// MapColor matches a single color against the flavor's palette without
// building a table. Build produces the same value for every triple.
func MapColor(f *flavor.Flavor, algo Algorithm, c cielab.Color) cielab.Color {
	r, g, b := newMatcher(f, algo).match(c.R, c.G, c.B)
	return cielab.Color{R: r, G: g, B: b, A: c.A}
}

type matcher struct {
	labs     []cielab.Lab
	colors   []cielab.Color
	power    float64
	weighted bool
}

func newMatcher(f *flavor.Flavor, algo Algorithm) *matcher {
	colors := make([]cielab.Color, len(f.Entries))
	for i, e := range f.Entries {
		colors[i] = e.Color
	}
	return &matcher{
		labs:     f.Labs(),
		colors:   colors,
		power:    algo.Power(),
		weighted: algo.Weighted(),
	}
}

func (m *matcher) buildPlane(pix []uint8, r uint8) {
	i := offset(r, 0, 0)
	for g := 0; g < 256; g++ {
		for b := 0; b < 256; b++ {
			cr, cg, cb := m.match(r, uint8(g), uint8(b))
			pix[i] = cr
			pix[i+1] = cg
			pix[i+2] = cb
			i += 3
		}
	}
}

func (m *matcher) match(r, g, b uint8) (uint8, uint8, uint8) {
	in := cielab.ToLab(cielab.Color{R: r, G: g, B: b, A: 0xFF})
	if m.weighted {
		return m.blend(in)
	}
	return m.nearest(in)
}

// blend averages all palette colors weighted by inverse powered distance.
// A zero distance gets a very large weight, which effectively pins the
// output to that palette color.
func (m *matcher) blend(in cielab.Lab) (uint8, uint8, uint8) {
	var sumR, sumG, sumB, total float64
	for i, lab := range m.labs {
		d := in.DistanceSquared(lab)
		w := 1e6
		if d > 0 {
			w = 1 / distPow(d, m.power)
		}
		c := m.colors[i]
		sumR += float64(c.R) * w
		sumG += float64(c.G) * w
		sumB += float64(c.B) * w
		total += w
	}

	if total <= 0 {
		c := m.colors[0]
		return c.R, c.G, c.B
	}

	return clampByte(sumR / total), clampByte(sumG / total), clampByte(sumB / total)
}

// nearest picks the palette color with minimum distance; ties keep the
// earlier entry.
func (m *matcher) nearest(in cielab.Lab) (uint8, uint8, uint8) {
	best, bestSum := 0, math.MaxFloat64
	for i, lab := range m.labs {
		if d := in.DistanceSquared(lab); d < bestSum {
			if d == 0 {
				best = i
				break
			}
			best, bestSum = i, d
		}
	}
	c := m.colors[best]
	return c.R, c.G, c.B
}

// distPow raises a squared distance to the algorithm's power. The named
// algorithms only use a handful of exponents, all cheaper than math.Pow.
func distPow(d, power float64) float64 {
	switch power {
	case 1.0:
		return d
	case 1.5:
		return d * math.Sqrt(d)
	case 2.0:
		return d * d
	case 2.5:
		return d * d * math.Sqrt(d)
	}
	return math.Pow(d, power)
}

func clampByte(v float64) uint8 {
	return uint8(min(max(math.Round(v), 0), 255))
}
