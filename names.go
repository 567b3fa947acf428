package hsla

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Predefined colors: the 16 CSS basic colors plus orange, all expressed
// through HSL360.
var (
	Black   = HSL360(0, 0, 0)
	Gray    = HSL360(0, 0, 50)
	Silver  = HSL360(0, 0, 75)
	White   = HSL360(0, 0, 100)
	Maroon  = HSL360(0, 100, 25)
	Red     = HSL360(0, 100, 50)
	Orange  = HSL360(39, 100, 50)
	Olive   = HSL360(60, 100, 25)
	Yellow  = HSL360(60, 100, 50)
	Green   = HSL360(120, 100, 25)
	Lime    = HSL360(120, 100, 50)
	Teal    = HSL360(180, 100, 25)
	Cyan    = HSL360(180, 100, 50)
	Navy    = HSL360(240, 100, 25)
	Blue    = HSL360(240, 100, 50)
	Purple  = HSL360(300, 100, 25)
	Magenta = HSL360(300, 100, 50)
)

// NamedColor pairs a palette color with its (lowercase) name.
type NamedColor struct {
	Name  string
	Color Color
}

// Ordered list of the predefined colors.
var PaletteList = []NamedColor{
	{"black", Black},
	{"gray", Gray},
	{"silver", Silver},
	{"white", White},
	{"maroon", Maroon},
	{"red", Red},
	{"orange", Orange},
	{"olive", Olive},
	{"yellow", Yellow},
	{"green", Green},
	{"lime", Lime},
	{"teal", Teal},
	{"cyan", Cyan},
	{"navy", Navy},
	{"blue", Blue},
	{"purple", Purple},
	{"magenta", Magenta},
}

// Map from color name to predefined Color.
var ColorMap map[string]Color

// Help string for the predefined color choices.
var ColorHelp string

func init() {
	ColorMap = make(map[string]Color, len(PaletteList))
	buf := strings.Builder{}
	for i, nc := range PaletteList {
		ColorMap[nc.Name] = nc.Color
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(nc.Name)
	}
	ColorHelp = buf.String()
}

// FromName converts a user input color name to a Color. Predefined palette
// names are matched first, then the full SVG 1.1 set (x/image/colornames).
func FromName(name string) (Color, error) {
	toRemove := " \t\r\n_-"
	name = strings.ToLower(strings.Map(func(r rune) rune {
		if strings.ContainsRune(toRemove, r) {
			return -1
		}
		return r
	}, name))
	if c, ok := ColorMap[name]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}
	return Color{}, fmt.Errorf("invalid color name '%s', must be an SVG color name or one of: %s", name, ColorHelp)
}
