package ui

import (
	"github.com/fatih/color"

	"devtoolbox/internal/colormath"
)

// Palette is the brand palette used by every console surface.
var Palette = struct {
	Accent       string // Primary brand color
	AccentBright string // Highlighted state
	AccentDim    string // Muted accent

	Info    string
	Success string
	Warn    string
	Error   string

	Muted string // Hints and metadata
}{
	Accent:       "#6366F1",
	AccentBright: "#818CF8",
	AccentDim:    "#4F46E5",
	Info:         "#38BDF8",
	Success:      "#22C55E",
	Warn:         "#F59E0B",
	Error:        "#EF4444",
	Muted:        "#94A3B8",
}

// hexColor builds a 24-bit foreground color from a hex literal. Bad input
// falls back to the terminal default.
func hexColor(hex string, attrs ...color.Attribute) *color.Color {
	c, err := colormath.ParseHex(hex)
	if err != nil {
		return color.New(attrs...)
	}
	return color.RGB(c.R, c.G, c.B).Add(attrs...)
}

// Swatch renders a block filled with hex followed by its code. Without
// color support it is just the code.
func Swatch(hex string) string {
	c, err := colormath.ParseHex(hex)
	if err != nil {
		return hex
	}
	if !IsRich() {
		return c.Hex()
	}
	block := color.BgRGB(c.R, c.G, c.B).Sprint("    ")
	return block + " " + c.Hex()
}

// SwatchRow renders several swatches on one line.
func SwatchRow(hexes []string) string {
	out := ""
	for i, h := range hexes {
		if i > 0 {
			out += "  "
		}
		out += Swatch(h)
	}
	return out
}
