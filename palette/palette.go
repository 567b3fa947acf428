// palette renders a base color and a few adjustment sweeps (lighten/darken,
// saturate, hue rotation, fade) as truecolor swatches with their CSS strings.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fortio.org/cli"
	"fortio.org/hsla"
	"fortio.org/log"
	"golang.org/x/term"
)

func main() {
	os.Exit(Main())
}

// ParseColor accepts a color name (see hsla.ColorHelp) or "h,s,l[,a]" with
// each channel in [0,1].
func ParseColor(input string) (hsla.Color, error) {
	if !strings.ContainsRune(input, ',') {
		return hsla.FromName(input)
	}
	parts := strings.Split(input, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return hsla.Color{}, fmt.Errorf("invalid color '%s', must be h,s,l or h,s,l,a", input)
	}
	vals := make([]float64, 0, 4)
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return hsla.Color{}, fmt.Errorf("invalid channel '%s': %w", p, err)
		}
		if v < 0 || v > 1 {
			return hsla.Color{}, fmt.Errorf("channel must be in [0,1], got %g", v)
		}
		vals = append(vals, v)
	}
	if len(vals) == 3 {
		return hsla.HSL(vals[0], vals[1], vals[2]), nil
	}
	return hsla.New(vals[0], vals[1], vals[2], vals[3]), nil
}

// Swatch returns a truecolor background block for the color, or its CSS
// string when color output is off.
func Swatch(c hsla.Color, trueColor bool) string {
	if !trueColor {
		return c.CSSString() + " "
	}
	v := c.AsRGBA()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m", v.R, v.G, v.B)
}

func sweep(out *strings.Builder, label string, base hsla.Color, steps int,
	trueColor bool, adjust func(hsla.Color, float64) hsla.Color,
) {
	out.WriteString(fmt.Sprintf("%-12s", label))
	for i := 0; i < steps; i++ {
		c := adjust(base, float64(i)/float64(steps-1))
		out.WriteString(Swatch(c, trueColor))
	}
	out.WriteByte('\n')
}

func Main() int {
	colorFlag := flag.String("color", "blue", "Base `color`: name or h,s,l[,a] in [0,1]")
	stepsFlag := flag.Int("steps", 8, "Number of swatches per sweep (minimum 2)")
	noColorFlag := flag.Bool("no-color", false, "Disable swatch escapes, print CSS strings only")
	cli.ArgsHelp = "\nShows adjustment sweeps of the base color as truecolor swatches,\nwith the hsla() CSS string of the base color."
	cli.Main()
	steps := *stepsFlag
	if steps < 2 {
		return log.FErrf("-steps must be at least 2, got %d", steps)
	}
	base, err := ParseColor(*colorFlag)
	if err != nil {
		return log.FErrf("Bad -color: %v", err)
	}
	trueColor := !*noColorFlag && term.IsTerminal(int(os.Stdout.Fd()))
	if !trueColor {
		log.LogVf("Not a terminal (or -no-color), CSS strings only")
	}
	buf := strings.Builder{}
	buf.WriteString("Base        ")
	buf.WriteString(Swatch(base, trueColor))
	buf.WriteString(" ")
	buf.WriteString(base.CSSString())
	buf.WriteString("\n")
	sweep(&buf, "Lighten", base, steps, trueColor, hsla.Color.Lighten)
	sweep(&buf, "Darken", base, steps, trueColor, hsla.Color.Darken)
	sweep(&buf, "Saturate", base, steps, trueColor, hsla.Color.Saturate)
	sweep(&buf, "Desaturate", base, steps, trueColor, hsla.Color.Desaturate)
	sweep(&buf, "Rotate", base, steps, trueColor, func(c hsla.Color, v float64) hsla.Color {
		return c.RotateHue(v * 360)
	})
	sweep(&buf, "FadeOut", base, steps, trueColor, hsla.Color.FadeOut)
	_, err = os.Stdout.WriteString(buf.String())
	if err != nil {
		return log.FErrf("Error writing: %v", err)
	}
	return 0
}
