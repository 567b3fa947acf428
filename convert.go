package hsla

import (
	"math"
)

// RGBAColor is the RGB side conversion payload, red, green, blue and alpha
// each in [0,1].
type RGBAColor struct {
	R, G, B, A float64
}

// RGBA converts red, green, blue in [0,1] plus alpha to a Color.
// Based on https://www.w3.org/TR/css-color-3/ and the usual
// https://stackoverflow.com/questions/2353211/hsl-to-rgb-color-conversion.
func RGBA(r, g, b, a float64) Color {
	minC := math.Min(math.Min(r, g), b)
	maxC := math.Max(math.Max(r, g), b)
	l := (minC + maxC) / 2
	if minC == maxC {
		// Achromatic, hue is conventionally 0.
		return Color{H: 0, S: 0, L: l, A: a}
	}
	d := maxC - minC
	var h float64
	// Exact equality on purpose: when channels tie for max the first
	// branch wins (r, then g, then b), e.g. yellow lands on the r branch.
	switch {
	case maxC == r:
		h = (g - b) / d
	case maxC == g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	h /= 6
	if h < 0 {
		h++
	}
	var s float64
	if l < 0.5 {
		s = d / (maxC + minC)
	} else {
		s = d / (2 - maxC - minC)
	}
	return Color{H: h, S: s, L: l, A: a}
}

// RGB is RGBA with alpha 1.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGB255 converts 8 bit channels [0,255] to a Color, alpha 1.
func RGB255(r, g, b uint8) Color {
	return RGBA(float64(r)/255, float64(g)/255, float64(b)/255, 1)
}

// FromRGBA is RGBA taking the named-field record instead of positional
// channels.
func FromRGBA(v RGBAColor) Color {
	return RGBA(v.R, v.G, v.B, v.A)
}

// ToRGBA converts the color back to RGB channels in [0,1], alpha passed
// through unchanged. The stored hue is first brought back into [0,1), so
// colors rotated past a full turn (or negative) convert like their wrapped
// equivalent.
func (c Color) ToRGBA() RGBAColor {
	h := c.H - math.Floor(c.H)
	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q
	return RGBAColor{
		R: hueToRGB(p, q, h+1/3.),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1/3.),
		A: c.A,
	}
}

// hueToRGB computes one RGB channel from the two lightness/saturation blend
// points p and q and the channel's hue offset t, which must be within one
// rotation of [0,1] (single wrap, not modulo).
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.
	}
	if t > 1 {
		t -= 1.
	}
	if t*6 < 1 {
		return p + (q-p)*6*t
	}
	if t*2 < 1 {
		return q
	}
	if t*3 < 2 {
		return p + (q-p)*(2/3.-t)*6
	}
	return p
}
