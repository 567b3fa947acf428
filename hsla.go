// Library for HSLA color values: construction from the usual conventions
// (normalized floats, degrees/percent, 8 bit RGB), conversion to/from RGB,
// CSS string output and channel adjustments (rotate, saturate, lighten, fade).
package hsla // import "fortio.org/hsla"

import (
	"math"
	"strconv"
	"strings"
)

// Color is a color in HSLA space. H is the hue as a fraction of a full
// rotation in [0,1) (not degrees), S, L and A are saturation, lightness and
// alpha in [0,1]. Fields are stored raw: constructors and adjustments never
// clamp the hue, and the raw constructors don't clamp anything, so values
// outside the nominal ranges survive as-is until conversion wraps the hue.
// All operations return a new value, a Color is never mutated in place.
type Color struct {
	H, S, L, A float64
}

// New returns the color with the given hue, saturation, lightness and alpha,
// all in [0,1]. Inputs are taken verbatim, without clamping.
func New(h, s, l, a float64) Color {
	return Color{H: h, S: s, L: l, A: a}
}

// HSL is New with alpha 1 (fully opaque).
func HSL(h, s, l float64) Color {
	return Color{H: h, S: s, L: l, A: 1}
}

// HSL360 takes the hue in degrees [0,360] and saturation and lightness in
// percent [0,100], the scale most color pickers and CSS use. Alpha is 1.
func HSL360(h, s, l float64) Color {
	return Color{H: h / 360, S: s / 100, L: l / 100, A: 1}
}

// CSSString formats the color as "hsla(H,S%,L%,A)" without spaces.
// H and A are rounded to 3 decimals, S and L to 2 decimals (after the x100).
// Note the hue is emitted as the stored [0,1) fraction and not rescaled to
// degrees; consumers expecting the CSS degree convention must rescale.
func (c Color) CSSString() string {
	buf := strings.Builder{}
	buf.WriteString("hsla(")
	buf.WriteString(fmtNum(round1000(c.H)))
	buf.WriteByte(',')
	buf.WriteString(fmtNum(roundPct(c.S)))
	buf.WriteString("%,")
	buf.WriteString(fmtNum(roundPct(c.L)))
	buf.WriteString("%,")
	buf.WriteString(fmtNum(round1000(c.A)))
	buf.WriteByte(')')
	return buf.String()
}

// String is CSSString, so Colors print readably with %v/%s.
func (c Color) String() string {
	return c.CSSString()
}

// round1000 rounds to 3 decimals (hue and alpha display precision).
func round1000(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// roundPct converts a [0,1] fraction to percent, rounded to 2 decimals.
func roundPct(v float64) float64 {
	return math.Round(v*10000) / 100
}

// fmtNum is the shortest decimal representation, no forced trailing zeros.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
