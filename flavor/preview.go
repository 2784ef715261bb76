package flavor

import (
	"image"

	"golang.org/x/image/draw"
)

// Preview renders the flavor's colors as a grid of square swatches.
func (f *Flavor) Preview() *image.RGBA {
	const (
		swatch = 60
		cols   = 5
		margin = 10
	)

	rows := (len(f.Entries) + cols - 1) / cols
	width := cols*swatch + (cols+1)*margin
	height := rows*swatch + (rows+1)*margin

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, e := range f.Entries {
		x := margin + (i%cols)*(swatch+margin)
		y := margin + (i/cols)*(swatch+margin)
		r := image.Rect(x, y, x+swatch, y+swatch)
		draw.Draw(img, r, image.NewUniform(e.Color), image.Point{}, draw.Src)
	}

	return img
}

// PreviewAll renders every flavor side by side, one column per flavor,
// light to dark.
func PreviewAll() *image.RGBA {
	const (
		swatch = 40
		margin = 5
		header = 30
	)

	rows := 0
	for _, f := range All {
		rows = max(rows, len(f.Entries))
	}

	colWidth := swatch + 2*margin
	width := len(All) * colWidth
	height := header + rows*(swatch+margin) + margin

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	white := image.NewUniform(rgb(0xFF, 0xFF, 0xFF))
	draw.Draw(img, img.Bounds(), white, image.Point{}, draw.Src)

	for col, f := range All {
		x := col*colWidth + margin
		for row, e := range f.Entries {
			y := header + margin + row*(swatch+margin)
			r := image.Rect(x, y, x+swatch, y+swatch)
			draw.Draw(img, r, image.NewUniform(e.Color), image.Point{}, draw.Src)
		}
	}

	return img
}
