// Package remap applies color lookup tables to still images and GIF
// animations.
package remap

import (
	"image"

	"golang.org/x/image/draw"

	"flavorize/lut"
	"flavorize/parallel"
)

// Image maps every pixel of src through the table and returns a new buffer
// of identical dimensions. Alpha is straight (not premultiplied) and is
// carried through unchanged. Pixels are independent, so rows are fanned out
// across the worker pool; the table is read-only and shared.
func Image(l *lut.Lut, src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	pool := parallel.Start(0)
	for y := 0; y < bounds.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+bounds.Dx()*4]
		pool.Do(func() { mapRow(l, row) })
	}
	pool.Wait()

	return dst
}

func mapRow(l *lut.Lut, row []uint8) {
	for i := 0; i+3 < len(row); i += 4 {
		row[i], row[i+1], row[i+2] = l.At(row[i], row[i+1], row[i+2])
	}
}
