package hsla

import (
	"image/color"
	"math"

	"fortio.org/safecast"
)

// Interop with the standard image/color package. The integer surface is
// clamped (uint8/uint16 can't carry out of range channels) but the stored
// HSLA value itself stays raw.

// RGBA implements the color.Color interface: alpha-premultiplied 16 bit
// channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	v := c.ToRGBA()
	al := clamp01(v.A)
	r = uint32(clamp01(v.R)*al*65535 + 0.5)
	g = uint32(clamp01(v.G)*al*65535 + 0.5)
	b = uint32(clamp01(v.B)*al*65535 + 0.5)
	a = uint32(al*65535 + 0.5)
	return
}

// AsRGBA returns the color as 8 bit non alpha-premultiplied RGBA.
func (c Color) AsRGBA() color.NRGBA {
	v := c.ToRGBA()
	return color.NRGBA{
		R: to255(v.R),
		G: to255(v.G),
		B: to255(v.B),
		A: to255(v.A),
	}
}

func to255(v float64) uint8 {
	return safecast.MustConvert[uint8](math.Round(clamp01(v) * 255))
}

// FromColor converts any color.Color to a Color. Premultiplied channels are
// divided back out by alpha first (a fully transparent input is black).
func FromColor(ci color.Color) Color {
	r, g, b, a := ci.RGBA()
	if a == 0 {
		return RGBA(0, 0, 0, 0)
	}
	// color.Color is alpha-premultiplied, undo that to get the raw RGB.
	return RGBA(
		float64(r)/float64(a),
		float64(g)/float64(a),
		float64(b)/float64(a),
		float64(a)/65535,
	)
}
