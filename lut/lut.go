// Package lut builds and caches dense RGB lookup tables that map every
// 8-bit color to a flavor's palette under a chosen matching algorithm.
package lut

import "flavorize/cielab"

// TableSize is the byte size of a full-resolution table: one packed RGB
// triple per representable 8-bit input color, 48 MiB total.
const TableSize = 256 * 256 * 256 * 3

// Lut is a dense mapping from every 8-bit RGB triple to a palette color.
// Once built it is read-only and safe for concurrent use.
type Lut struct {
	pix []uint8
}

// New wraps a raw table buffer. The buffer must be TableSize bytes.
func New(pix []uint8) *Lut {
	if len(pix) != TableSize {
		panic("lut: bad table size")
	}
	return &Lut{pix: pix}
}

func offset(r, g, b uint8) int {
	return (int(r)<<16 | int(g)<<8 | int(b)) * 3
}

// At returns the mapped RGB triple for an input triple.
func (l *Lut) At(r, g, b uint8) (uint8, uint8, uint8) {
	i := offset(r, g, b)
	return l.pix[i], l.pix[i+1], l.pix[i+2]
}

// Map transforms a color through the table, carrying alpha unchanged.
func (l *Lut) Map(c cielab.Color) cielab.Color {
	i := offset(c.R, c.G, c.B)
	return cielab.Color{R: l.pix[i], G: l.pix[i+1], B: l.pix[i+2], A: c.A}
}
