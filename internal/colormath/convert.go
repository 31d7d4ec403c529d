// Package colormath holds the color math shared by every color tool:
// hex/RGB/HSL conversion, WCAG contrast, color-blindness simulation,
// harmonic palettes and the CSS named-color table.
package colormath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidHex is returned when a hex string has the wrong length or
// contains non-hex characters. Callers treat it as "skip recompute".
var ErrInvalidHex = errors.New("invalid hex color")

// RGB is a color with integer channels in [0, 255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL is a color with hue in degrees [0, 360) and saturation and
// lightness in percent [0, 100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Hex returns the lowercase #rrggbb form of c.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// CSS returns the rgb() functional notation.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Clamp limits every channel to [0, 255].
func (c RGB) Clamp() RGB {
	return RGB{R: clampInt(c.R, 0, 255), G: clampInt(c.G, 0, 255), B: clampInt(c.B, 0, 255)}
}

// CSS returns the hsl() functional notation.
func (c HSL) CSS() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Clamp wraps the hue into [0, 360) and limits saturation and lightness
// to [0, 100].
func (c HSL) Clamp() HSL {
	return HSL{H: wrapHue(c.H), S: clampInt(c.S, 0, 100), L: clampInt(c.L, 0, 100)}
}

// ParseHex parses a 3- or 6-digit hex color with or without a leading '#'.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		var v [3]int
		for i := 0; i < 3; i++ {
			n, ok := hexNibble(hex[i])
			if !ok {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i] = n*16 + n
		}
		return RGB{R: v[0], G: v[1], B: v[2]}, nil
	case 6:
		var v [3]int
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(hex[2*i])
			lo, ok2 := hexNibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i] = hi*16 + lo
		}
		return RGB{R: v[0], G: v[1], B: v[2]}, nil
	default:
		return RGB{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidHex, s, len(hex))
	}
}

// IsHex reports whether s parses as a 3- or 6-digit hex color.
func IsHex(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

// NormalizeHex returns s with a leading '#' and surrounding whitespace
// removed, preserving the caller's digits and case.
func NormalizeHex(s string) string {
	return "#" + strings.TrimPrefix(strings.TrimSpace(s), "#")
}

func hexNibble(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// RGBToHex clamps each channel to [0, 255] and formats #rrggbb.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampInt(r, 0, 255), clampInt(g, 0, 255), clampInt(b, 0, 255))
}

// RGBToHSL converts an RGB color to rounded HSL.
func RGBToHSL(c RGB) HSL {
	c = c.Clamp()
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return HSL{
		H: wrapHue(int(math.Round(h))),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts HSL to RGB using the chroma/intermediate/match
// decomposition over six 60 degree hue sectors.
func HSLToRGB(c HSL) RGB {
	c = c.Clamp()
	h := float64(c.H)
	s := float64(c.S) / 100
	l := float64(c.L) / 100

	if s == 0 {
		v := int(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: clampInt(int(math.Round((r+m)*255)), 0, 255),
		G: clampInt(int(math.Round((g+m)*255)), 0, 255),
		B: clampInt(int(math.Round((b+m)*255)), 0, 255),
	}
}

// HSLToHex wraps h into [0, 360), clamps s and l into [0, 100] and
// returns the hex form.
func HSLToHex(h, s, l int) string {
	return HSLToRGB(HSL{H: h, S: s, L: l}).Hex()
}

// HexToHSL parses a hex color and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(c), nil
}

// Conversion is a color in every supported notation.
type Conversion struct {
	Hex    string `json:"hex"`
	RGB    RGB    `json:"rgb"`
	HSL    HSL    `json:"hsl"`
	RGBCSS string `json:"rgb_css"`
	HSLCSS string `json:"hsl_css"`
}

// NewConversion derives all notations from an RGB color.
func NewConversion(c RGB) Conversion {
	c = c.Clamp()
	hsl := RGBToHSL(c)
	return Conversion{
		Hex:    c.Hex(),
		RGB:    c,
		HSL:    hsl,
		RGBCSS: c.CSS(),
		HSLCSS: hsl.CSS(),
	}
}

// Convert parses any notation accepted by ParseColor and returns the
// color in every notation.
func Convert(input string) (Conversion, error) {
	c, err := ParseColor(input)
	if err != nil {
		return Conversion{}, err
	}
	return NewConversion(c), nil
}

// ConvertHSL builds a conversion from an HSL triple, clamping out of
// range values the way the converter sliders do.
func ConvertHSL(c HSL) Conversion {
	c = HSL{H: clampInt(c.H, 0, 360), S: clampInt(c.S, 0, 100), L: clampInt(c.L, 0, 100)}
	return NewConversion(HSLToRGB(c))
}

func wrapHue(h int) int {
	return ((h % 360) + 360) % 360
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
