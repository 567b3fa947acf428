package hsla_test

import (
	"image/color"
	"testing"

	"fortio.org/hsla"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = hsla.Color{}

func udiff(a, b uint32) uint32 {
	if a < b {
		return b - a
	}
	return a - b
}

func TestColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          hsla.Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", hsla.Black, 0, 0, 0, 65535},
		{"opaque white", hsla.White, 65535, 65535, 65535, 65535},
		{"opaque red", hsla.Red, 65535, 0, 0, 65535},
		{"transparent", hsla.New(0, 0, 0, 0), 0, 0, 0, 0},
		{"50% alpha red is premultiplied", hsla.New(0, 1, 0.5, 0.5), 32768, 0, 0, 32768},
		// The integer surface clamps what the raw value carries.
		{"out of range lightness", hsla.New(0, 0, 1.5, 1), 65535, 65535, 65535, 65535},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			// Allow +-1 for floating point on the 16 bit scale.
			if udiff(r, tt.wantR) > 1 || udiff(g, tt.wantG) > 1 || udiff(b, tt.wantB) > 1 || udiff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestAsRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    hsla.Color
		want color.NRGBA
	}{
		{"red", hsla.Red, color.NRGBA{R: 255, A: 255}},
		{"mid gray rounds up", hsla.Gray, color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
		{"orange", hsla.Orange, color.NRGBA{R: 255, G: 166, B: 0, A: 255}},
		{"half transparent blue", hsla.Blue.FadeOut(0.5), color.NRGBA{B: 255, A: 128}},
		{"overbright lightness saturates", hsla.New(0, 0, 1.5, 1), color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"overlarge alpha saturates", hsla.New(0, 1, 0.5, 3), color.NRGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.AsRGBA(); got != tt.want {
				t.Errorf("AsRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	// color.Color -> Color -> 8 bit round trip.
	in := color.NRGBA{R: 204, G: 114, B: 67, A: 255}
	c := hsla.FromColor(in)
	if got := c.AsRGBA(); got != in {
		t.Errorf("FromColor(%v) = %#v -> %v", in, c, got)
	}
	// Fully transparent input is transparent black rather than 0/0.
	c = hsla.FromColor(color.NRGBA{})
	if c != hsla.New(0, 0, 0, 0) {
		t.Errorf("FromColor(transparent) = %#v", c)
	}
	// Premultiplied source: half alpha red.
	c = hsla.FromColor(color.RGBA{R: 128, A: 128})
	if absDiff(c.H, 0) > 1e-9 || absDiff(c.S, 1) > 1e-9 || absDiff(c.L, 0.5) > 1e-9 ||
		absDiff(c.A, 128/255.) > 1e-9 {
		t.Errorf("FromColor(premultiplied red) = %#v", c)
	}
}
