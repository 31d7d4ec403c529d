// Package cssgen renders CSS snippets for the design and frontend tools.
// Every generator is a value type with a CSS method; out of range numeric
// fields are clamped to the ranges of the matching editor controls.
package cssgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"devtoolbox/internal/colormath"
)

var (
	ErrInvalidColor  = errors.New("invalid color")
	ErrTooFewStops   = errors.New("gradient needs at least 2 color stops")
	ErrTooManyStops  = errors.New("gradient allows at most 10 color stops")
	ErrStopIndex     = errors.New("color stop index out of range")
	ErrInvalidOption = errors.New("invalid option")
	ErrEmptyInput    = errors.New("empty input")
)

// checkColor accepts anything colormath.ParseColor understands plus the
// #RGBA and #RRGGBBAA alpha forms used by shadow colors.
func checkColor(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := colormath.ParseColor(s); err == nil {
		return s, nil
	}
	if isAlphaHex(s) {
		return s, nil
	}
	return "", fmt.Errorf("%w: %s %q", ErrInvalidColor, field, s)
}

func isAlphaHex(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 4 && len(hex) != 8 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}

// oneOf validates an enumerated option. An empty value selects def.
func oneOf(field, v, def string, allowed ...string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return def, nil
	}
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s %q (want one of %s)", ErrInvalidOption, field, v, strings.Join(allowed, ", "))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func num(f float64) string {
	return colormath.FormatNumber(f)
}

// block renders a CSS rule with two-space indented declarations.
func block(selector string, decls [][2]string) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range decls {
		fmt.Fprintf(&b, "  %s: %s;\n", d[0], d[1])
	}
	b.WriteString("}")
	return b.String()
}
