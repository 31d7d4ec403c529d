package colormath

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// ErrUnknownColor is returned when a string is not a hex value, an rgb()
// or hsl() function, or a CSS color name.
var ErrUnknownColor = errors.New("unrecognized color format")

// ParseColor parses a color string and returns its RGB value.
// Supported formats:
//   - Hex: "#RGB", "#RRGGBB", with or without '#'
//   - RGB function: "rgb(99, 102, 241)"
//   - HSL function: "hsl(239, 84%, 67%)"
//   - CSS named colors, case-insensitive: "RebeccaPurple"
//
// Numeric components outside their range are clamped, not rejected.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("%w: empty color string", ErrUnknownColor)
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		return parseRGBFunc(lower)
	case strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla("):
		return parseHSLFunc(lower)
	}

	if c, ok := LookupNamed(s); ok {
		return c, nil
	}

	c, err := ParseHex(s)
	if err != nil {
		if strings.HasPrefix(s, "#") || len(s) == 3 || len(s) == 6 {
			return RGB{}, err
		}
		return RGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}

// funcArgs splits "name(a, b, c)" into its arguments. Both comma and
// whitespace separated forms are accepted.
func funcArgs(s string) ([]string, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	inner := s[open+1 : len(s)-1]
	inner = strings.NewReplacer(",", " ", "/", " ").Replace(inner)
	parts := strings.Fields(inner)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: %q needs 3 components", ErrUnknownColor, s)
	}
	return parts, nil
}

func parseRGBFunc(s string) (RGB, error) {
	parts, err := funcArgs(s)
	if err != nil {
		return RGB{}, err
	}

	var v [3]int
	for i := 0; i < 3; i++ {
		p := parts[i]
		percent := strings.HasSuffix(p, "%")
		f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: bad rgb component %q", ErrUnknownColor, p)
		}
		if percent {
			f = f * 255 / 100
		}
		v[i] = clampInt(int(math.Round(f)), 0, 255)
	}
	return RGB{R: v[0], G: v[1], B: v[2]}, nil
}

func parseHSLFunc(s string) (RGB, error) {
	parts, err := funcArgs(s)
	if err != nil {
		return RGB{}, err
	}

	var v [3]float64
	for i := 0; i < 3; i++ {
		p := strings.TrimSuffix(strings.TrimSuffix(parts[i], "deg"), "%")
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: bad hsl component %q", ErrUnknownColor, parts[i])
		}
		v[i] = f
	}
	return HSLToRGB(HSL{
		H: int(math.Round(v[0])),
		S: int(math.Round(v[1])),
		L: int(math.Round(v[2])),
	}), nil
}

// RGBAString returns "rgba(r, g, b, a)" for a hex color and an opacity in
// percent. The opacity is clamped to [0, 100].
func RGBAString(hex string, opacityPercent float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	alpha := clampFloat(opacityPercent, 0, 100) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, FormatNumber(alpha)), nil
}

// Lighten adds amount to every channel, saturating at 255.
func Lighten(hex string, amount int) (RGB, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: c.R + amount, G: c.G + amount, B: c.B + amount}.Clamp(), nil
}

// Darken subtracts amount from every channel, saturating at 0.
func Darken(hex string, amount int) (RGB, error) {
	return Lighten(hex, -amount)
}

// Random returns a uniformly distributed #rrggbb color.
func Random(rng *rand.Rand) string {
	var n int
	if rng == nil {
		n = rand.Intn(0x1000000)
	} else {
		n = rng.Intn(0x1000000)
	}
	return fmt.Sprintf("#%06x", n)
}

// FormatNumber renders f with the shortest representation, so 0.3 stays
// "0.3" and 2 stays "2".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
