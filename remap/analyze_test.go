package remap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flavorize/cielab"
	"flavorize/flavor"
)

func uniformImage(c color.NRGBA, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestAnalyzeSuggestsByBrightness(t *testing.T) {
	tests := []struct {
		c    color.NRGBA
		want *flavor.Flavor
	}{
		{color.NRGBA{250, 250, 250, 255}, flavor.Latte},
		{color.NRGBA{150, 150, 150, 255}, flavor.Frappe},
		{color.NRGBA{100, 100, 100, 255}, flavor.Macchiato},
		{color.NRGBA{20, 20, 20, 255}, flavor.Mocha},
	}

	for _, tt := range tests {
		_, got := Analyze(uniformImage(tt.c, 4, 4), 5)
		assert.Same(t, tt.want, got, "%v", tt.c)
	}
}

func TestAnalyzeDominantColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(2, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(3, 0, color.NRGBA{0, 0, 255, 255})

	dominant, _ := Analyze(img, 2)
	require.Len(t, dominant, 2)
	assert.Equal(t, ColorCount{cielab.Color{R: 255, G: 0, B: 0, A: 255}, 3}, dominant[0])
	assert.Equal(t, ColorCount{cielab.Color{R: 0, G: 0, B: 255, A: 255}, 1}, dominant[1])
}

func TestAnalyzeTruncatesToN(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 1))
	for x := 0; x < 8; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{uint8(x * 30), 0, 0, 255})
	}

	dominant, _ := Analyze(img, 5)
	assert.Len(t, dominant, 5)
}

func TestSideBySide(t *testing.T) {
	orig := uniformImage(color.NRGBA{255, 0, 0, 255}, 2, 3)
	proc := uniformImage(color.NRGBA{0, 255, 0, 255}, 4, 2)

	got := SideBySide(orig, proc)
	require.Equal(t, image.Rect(0, 0, 4*2+20, 3), got.Bounds())

	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, got.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, got.NRGBAAt(24, 0))
	// background in the margin
	assert.Equal(t, color.NRGBA{240, 240, 240, 255}, got.NRGBAAt(21, 0))
}
