package hsla

// Channel adjustments. Each returns a new Color with exactly one channel
// offset. Saturation, lightness and alpha are clamped to [0,1] (saturating,
// no wraparound). Hue is intentionally left unclamped: the conversion math
// wraps it, and clamping here would break multi-turn rotations.

// RotateHue rotates the hue by the given angle in degrees. The result may
// leave [0,1); ToRGBA and friends wrap it back.
func (c Color) RotateHue(degrees float64) Color {
	return Color{H: c.H + degrees/360, S: c.S, L: c.L, A: c.A}
}

// Saturate increases the saturation by v, clamped to [0,1].
func (c Color) Saturate(v float64) Color {
	return Color{H: c.H, S: clamp01(c.S + v), L: c.L, A: c.A}
}

// Desaturate decreases the saturation by v, clamped to [0,1].
func (c Color) Desaturate(v float64) Color {
	return c.Saturate(-v)
}

// Lighten increases the lightness by v, clamped to [0,1].
func (c Color) Lighten(v float64) Color {
	return Color{H: c.H, S: c.S, L: clamp01(c.L + v), A: c.A}
}

// Darken decreases the lightness by v, clamped to [0,1].
func (c Color) Darken(v float64) Color {
	return c.Lighten(-v)
}

// FadeIn increases the alpha (opacity) by v, clamped to [0,1].
func (c Color) FadeIn(v float64) Color {
	return Color{H: c.H, S: c.S, L: c.L, A: clamp01(c.A + v)}
}

// FadeOut decreases the alpha (opacity) by v, clamped to [0,1].
func (c Color) FadeOut(v float64) Color {
	return c.FadeIn(-v)
}
