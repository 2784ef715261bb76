// based on:
// https://en.wikipedia.org/wiki/CIELAB_color_space
// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html

package cielab

import (
	"image/color"
	"math"
)

// Color is an 8-bit sRGB color with straight alpha.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

var _ color.Color = Color{}

func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	r := uint32(c.R)
	r |= r << 8
	g := uint32(c.G)
	g |= g << 8
	b := uint32(c.B)
	b |= b << 8
	a := uint32(c.A)
	a |= a << 8
	return r, g, b, a
}

type Lab struct {
	L float64 // perceived lightness
	A float64 // how green/red the color is
	B float64 // how blue/yellow the color is
}

// D65 reference white, 2° observer.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// linear8 caches the sRGB transfer function for all 8-bit channel values;
// table builds call ToLab for every color of the RGB cube.
var linear8 = func() (t [256]float64) {
	for i := range t {
		t[i] = toLinear(float64(i) / 255)
	}
	return t
}()

// ToLab converts an 8-bit sRGB color to CIELAB. Alpha does not participate
// in the transform.
func ToLab(c Color) Lab {
	r := linear8[c.R]
	g := linear8[c.G]
	b := linear8[c.B]

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// DistanceSquared is the squared Euclidean distance between two Lab points.
func (lc Lab) DistanceSquared(other Lab) float64 {
	dL := lc.L - other.L
	da := lc.A - other.A
	db := lc.B - other.B
	return dL*dL + da*da + db*db
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	} else {
		return x / 12.92
	}
}
