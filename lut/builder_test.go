package lut

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flavorize/cielab"
	"flavorize/flavor"
)

// Building a full table is expensive, so the tests share one.
var mochaNearest = sync.OnceValue(func() *Lut {
	l, err := Build(context.Background(), flavor.Mocha, NearestNeighbor)
	if err != nil {
		panic(err)
	}
	return l
})

func TestBuildMatchesSingleColorPath(t *testing.T) {
	if testing.Short() {
		t.Skip("full table build")
	}
	l := mochaNearest()

	samples := []cielab.Color{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 1, G: 2, B: 3, A: 255},
		{R: 128, G: 128, B: 128, A: 255},
		{R: 200, G: 13, B: 97, A: 255},
	}
	for _, c := range samples {
		want := MapColor(flavor.Mocha, NearestNeighbor, c)
		r, g, b := l.At(c.R, c.G, c.B)
		assert.Equal(t, want, cielab.Color{R: r, G: g, B: b, A: 255}, "%v", c)
	}
}

func TestBuildClosureOverPalette(t *testing.T) {
	if testing.Short() {
		t.Skip("full table build")
	}
	l := mochaNearest()

	// a palette color is its own nearest neighbor
	for _, e := range flavor.Mocha.Entries {
		r, g, b := l.At(e.Color.R, e.Color.G, e.Color.B)
		assert.Equal(t, e.Color, cielab.Color{R: r, G: g, B: b, A: 255}, e.Name)
	}
}

func TestBuildIdempotentNearestFamily(t *testing.T) {
	if testing.Short() {
		t.Skip("full table build")
	}
	l := mochaNearest()

	for _, c := range []cielab.Color{{R: 255, G: 0, B: 0, A: 255}, {R: 7, G: 200, B: 30, A: 255}, {R: 90, G: 90, B: 90, A: 255}} {
		r1, g1, b1 := l.At(c.R, c.G, c.B)
		r2, g2, b2 := l.At(r1, g1, b1)
		assert.Equal(t, [3]uint8{r1, g1, b1}, [3]uint8{r2, g2, b2}, "%v", c)
	}
}

func TestMapColorNearestAgreesWithFlavor(t *testing.T) {
	in := cielab.Color{R: 255, G: 0, B: 0, A: 255}
	got := MapColor(flavor.Mocha, NearestNeighbor, in)

	want := flavor.Mocha.Nearest(in)
	assert.Equal(t, want.Color.R, got.R)
	assert.Equal(t, want.Color.G, got.G)
	assert.Equal(t, want.Color.B, got.B)
	assert.Equal(t, uint8(255), got.A, "alpha carried through")

	// the result is an actual palette color
	found := false
	for _, e := range flavor.Mocha.Entries {
		if e.Color.R == got.R && e.Color.G == got.G && e.Color.B == got.B {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestMapColorWeightedDegeneratesAtPaletteColors(t *testing.T) {
	// an exact palette color has zero distance to itself, so the blend
	// collapses onto it (up to rounding)
	for _, e := range flavor.Latte.Entries {
		got := MapColor(flavor.Latte, ShepardsMethod, e.Color)
		assert.InDelta(t, float64(e.Color.R), float64(got.R), 1, e.Name)
		assert.InDelta(t, float64(e.Color.G), float64(got.G), 1, e.Name)
		assert.InDelta(t, float64(e.Color.B), float64(got.B), 1, e.Name)
	}
}

func TestMapColorDeterministic(t *testing.T) {
	in := cielab.Color{R: 42, G: 160, B: 250, A: 128}
	for _, algo := range []Algorithm{ShepardsMethod, GaussianSampling, Euclide} {
		first := MapColor(flavor.Frappe, algo, in)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, MapColor(flavor.Frappe, algo, in), algo)
		}
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l, err := Build(ctx, flavor.Mocha, NearestNeighbor)
	require.Error(t, err)
	assert.Nil(t, l)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDistPow(t *testing.T) {
	for _, power := range []float64{1.0, 1.5, 2.0, 2.5, 3.7} {
		assert.InEpsilon(t, math.Pow(7.3, power), distPow(7.3, power), 1e-12, "power=%v", power)
	}
}
