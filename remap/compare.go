package remap

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// SideBySide lays out the original and transformed images next to each
// other on a light background, original on the left.
func SideBySide(original, transformed image.Image) *image.NRGBA {
	const margin = 20

	ob := original.Bounds()
	tb := transformed.Bounds()
	cell := image.Pt(max(ob.Dx(), tb.Dx()), max(ob.Dy(), tb.Dy()))

	dst := image.NewNRGBA(image.Rect(0, 0, cell.X*2+margin, cell.Y))
	bg := image.NewUniform(color.NRGBA{240, 240, 240, 255})
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)

	left := image.Rect(0, 0, ob.Dx(), ob.Dy())
	draw.Draw(dst, left, original, ob.Min, draw.Over)

	right := image.Rect(cell.X+margin, 0, cell.X+margin+tb.Dx(), tb.Dy())
	draw.Draw(dst, right, transformed, tb.Min, draw.Over)

	return dst
}
