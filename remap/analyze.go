package remap

import (
	"image"
	"image/color"
	"sort"

	"flavorize/cielab"
	"flavorize/flavor"
)

// ColorCount is one dominant color and the number of pixels carrying it.
type ColorCount struct {
	Color cielab.Color
	Count int
}

// Analyze returns the image's most frequent colors (up to n) and suggests
// the flavor matching its overall brightness: light images get latte, dark
// ones mocha.
func Analyze(img image.Image, n int) ([]ColorCount, *flavor.Flavor) {
	counts := make(map[cielab.Color]int)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			counts[cielab.Color{R: c.R, G: c.G, B: c.B, A: c.A}]++
		}
	}

	dominant := make([]ColorCount, 0, len(counts))
	for c, cnt := range counts {
		dominant = append(dominant, ColorCount{Color: c, Count: cnt})
	}
	sort.Slice(dominant, func(i, j int) bool {
		if dominant[i].Count != dominant[j].Count {
			return dominant[i].Count > dominant[j].Count
		}
		return packed(dominant[i].Color) < packed(dominant[j].Color)
	})
	if len(dominant) > n {
		dominant = dominant[:n]
	}

	var brightness float64
	for _, d := range dominant {
		brightness += (float64(d.Color.R) + float64(d.Color.G) + float64(d.Color.B)) / 3
	}
	if len(dominant) > 0 {
		brightness /= float64(len(dominant))
	}

	return dominant, suggest(brightness)
}

// packed gives colors a stable order, so equal-count ties are
// deterministic.
func packed(c cielab.Color) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func suggest(brightness float64) *flavor.Flavor {
	switch {
	case brightness > 180:
		return flavor.Latte
	case brightness > 120:
		return flavor.Frappe
	case brightness > 80:
		return flavor.Macchiato
	default:
		return flavor.Mocha
	}
}
