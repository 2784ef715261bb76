package remap

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"log/slog"

	"golang.org/x/image/draw"

	"flavorize/cielab"
	"flavorize/lut"
)

// GIF transforms every frame of an animation through the table and writes
// the re-encoded result to w. Frame geometry, per-frame delays and disposal
// are preserved; the output animation loops forever. Cancellation is
// observed at the start of each frame.
func GIF(ctx context.Context, w io.Writer, r io.Reader, l *lut.Lut) error {
	src, err := gif.DecodeAll(r)
	if err != nil {
		return fmt.Errorf("could not decode animation: %w", errors.Join(ErrDecode, err))
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, len(src.Image)),
		Delay:     src.Delay,
		Disposal:  src.Disposal,
		LoopCount: 0, // loop forever
		Config: image.Config{
			Width:  src.Config.Width,
			Height: src.Config.Height,
		},
	}

	for i, frame := range src.Image {
		if ctx.Err() != nil {
			return fmt.Errorf("animation transform interrupted at frame %d/%d: %w",
				i, len(src.Image), context.Cause(ctx))
		}

		pal := framePalette(frame)
		if len(frame.Palette) == 0 {
			slog.Warn("frame has no palette, treating indices as grayscale", "frame", i)
		}

		mapped := Image(l, resolveFrame(frame, pal))

		// every mapped pixel color is a mapped palette entry, so encoding
		// with the mapped palette is exact
		outPal := make(color.Palette, len(pal))
		for j, c := range pal {
			outPal[j] = l.Map(c)
		}

		dst := image.NewPaletted(frame.Rect, outPal)
		draw.Draw(dst, frame.Rect, mapped, frame.Rect.Min, draw.Src)
		out.Image[i] = dst
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("could not encode animation: %w", errors.Join(ErrEncode, err))
	}
	return nil
}

// framePalette returns the frame's own palette (the decoder already
// resolves local versus global tables), falling back to a grayscale ramp
// for a malformed frame with no palette at all.
func framePalette(frame *image.Paletted) []cielab.Color {
	if len(frame.Palette) > 0 {
		pal := make([]cielab.Color, len(frame.Palette))
		for i, c := range frame.Palette {
			nc := color.NRGBAModel.Convert(c).(color.NRGBA)
			pal[i] = cielab.Color{R: nc.R, G: nc.G, B: nc.B, A: nc.A}
		}
		return pal
	}

	pal := make([]cielab.Color, 256)
	for i := range pal {
		v := uint8(i)
		pal[i] = cielab.Color{R: v, G: v, B: v, A: 0xFF}
	}
	return pal
}

// resolveFrame expands palette indices to straight-alpha RGBA.
func resolveFrame(frame *image.Paletted, pal []cielab.Color) *image.NRGBA {
	dst := image.NewNRGBA(frame.Rect)
	for y, dy := 0, frame.Rect.Dy(); y < dy; y++ {
		src := frame.Pix[y*frame.Stride : y*frame.Stride+frame.Rect.Dx()]
		row := dst.Pix[y*dst.Stride:]
		for x, idx := range src {
			c := pal[int(idx)%len(pal)]
			row[x*4] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return dst
}
