package cielab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLab(t *testing.T) {
	tests := []struct {
		name    string
		in      Color
		l, a, b float64
	}{
		{"white", Color{255, 255, 255, 255}, 100, 0, 0},
		{"black", Color{0, 0, 0, 255}, 0, 0, 0},
		{"red", Color{255, 0, 0, 255}, 53.24, 80.09, 67.20},
		{"green", Color{0, 255, 0, 255}, 87.73, -86.18, 83.18},
		{"blue", Color{0, 0, 255, 255}, 32.30, 79.19, -107.86},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := ToLab(tt.in)
			assert.InDelta(t, tt.l, lc.L, 0.05)
			assert.InDelta(t, tt.a, lc.A, 0.05)
			assert.InDelta(t, tt.b, lc.B, 0.05)
		})
	}
}

func TestToLabAlphaIgnored(t *testing.T) {
	opaque := ToLab(Color{120, 30, 200, 255})
	transparent := ToLab(Color{120, 30, 200, 0})
	require.Equal(t, opaque, transparent)
}

func TestDistanceSquared(t *testing.T) {
	a := ToLab(Color{10, 20, 30, 255})
	b := ToLab(Color{200, 100, 50, 255})

	assert.Zero(t, a.DistanceSquared(a))
	assert.Equal(t, a.DistanceSquared(b), b.DistanceSquared(a))
	assert.Positive(t, a.DistanceSquared(b))
}

func TestColorRGBA(t *testing.T) {
	c := Color{0x12, 0x34, 0x56, 0x78}
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x1212), r)
	assert.Equal(t, uint32(0x3434), g)
	assert.Equal(t, uint32(0x5656), b)
	assert.Equal(t, uint32(0x7878), a)
}
