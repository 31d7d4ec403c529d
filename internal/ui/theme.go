package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"devtoolbox/internal/colormath"
)

// Theme provides styled color functions for consistent CLI output
// Respects NO_COLOR and FORCE_COLOR environment variables

var (
	// Check color support
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

func init() {
	if forceColor {
		color.NoColor = false
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor
}

// Accent returns primary brand-colored text
func Accent(format string, a ...any) string {
	return hexColor(Palette.Accent).Sprintf(format, a...)
}

// AccentDim returns muted accent text
func AccentDim(format string, a ...any) string {
	return hexColor(Palette.AccentDim).Sprintf(format, a...)
}

// Success returns success-styled text
func Success(format string, a ...any) string {
	return hexColor(Palette.Success).Sprintf(format, a...)
}

// Warn returns warning-styled text
func Warn(format string, a ...any) string {
	return hexColor(Palette.Warn).Sprintf(format, a...)
}

// Error returns error-styled text
func Error(format string, a ...any) string {
	return hexColor(Palette.Error).Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...any) string {
	return hexColor(Palette.Muted).Sprintf(format, a...)
}

// Heading returns bold accent text for section headers
func Heading(format string, a ...any) string {
	return hexColor(Palette.Accent, color.Bold).Sprintf(format, a...)
}

// Badge renders text in bold white on the accent background.
func Badge(text string) string {
	c, err := colormath.ParseHex(Palette.Accent)
	if err != nil {
		return Heading("%s", text)
	}
	return color.BgRGB(c.R, c.G, c.B).Add(color.FgWhite, color.Bold).Sprint(text)
}
