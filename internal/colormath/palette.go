package colormath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidScheme is returned for an unknown harmony scheme name.
var ErrInvalidScheme = errors.New("invalid palette scheme")

// Scheme is a color harmony rule.
type Scheme string

const (
	Analogous          Scheme = "analogous"
	Complementary      Scheme = "complementary"
	Triadic            Scheme = "triadic"
	Tetradic           Scheme = "tetradic"
	Monochromatic      Scheme = "monochromatic"
	SplitComplementary Scheme = "split-complementary"
)

// Schemes returns every supported scheme in menu order.
func Schemes() []Scheme {
	return []Scheme{Analogous, Complementary, Triadic, Tetradic, Monochromatic, SplitComplementary}
}

// ParseScheme parses a scheme name case-insensitively. Underscores and
// spaces are accepted in place of the hyphen.
func ParseScheme(s string) (Scheme, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for _, sc := range Schemes() {
		if Scheme(name) == sc {
			return sc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidScheme, s)
}

// offset is one palette slot relative to the base color. A slot with
// base set is the base color itself.
type offset struct {
	dh, ds, dl int
	base       bool
}

var baseSlot = offset{base: true}

var schemeOffsets = map[Scheme][]offset{
	Analogous: {
		{dh: -60}, {dh: -30}, baseSlot, {dh: 30}, {dh: 60},
	},
	Complementary: {
		{dl: -20}, {ds: -20}, baseSlot, {dh: 180, ds: -20}, {dh: 180, dl: -20},
	},
	Triadic: {
		{ds: -20}, baseSlot, {dh: 120}, {dh: 240}, {dh: 240, ds: -20},
	},
	Tetradic: {
		baseSlot, {dh: 90}, {dh: 180}, {dh: 270},
	},
	Monochromatic: {
		{dl: -40}, {dl: -20}, baseSlot, {ds: -30, dl: 20}, {ds: -50, dl: 40},
	},
	SplitComplementary: {
		{ds: -20}, baseSlot, {dh: 150}, {dh: 210}, {dh: 210, ds: -20},
	},
}

// Palette is an ordered set of hex colors derived from one base color.
type Palette struct {
	Base   string   `json:"base"`
	Scheme Scheme   `json:"scheme"`
	Colors []string `json:"colors"`
}

// GeneratePalette derives a palette from base using scheme. The base
// color appears at its slot as given, with a leading '#'.
func GeneratePalette(base string, scheme Scheme) (Palette, error) {
	offsets, ok := schemeOffsets[scheme]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrInvalidScheme, scheme)
	}
	hsl, err := HexToHSL(base)
	if err != nil {
		return Palette{}, err
	}

	normalized := NormalizeHex(base)
	colors := make([]string, 0, len(offsets))
	for _, o := range offsets {
		if o.base {
			colors = append(colors, normalized)
			continue
		}
		colors = append(colors, HSLToHex(hsl.H+o.dh, hsl.S+o.ds, hsl.L+o.dl))
	}

	return Palette{Base: normalized, Scheme: scheme, Colors: colors}, nil
}

// CSSVariables renders the palette as custom properties on :root.
func (p Palette) CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range p.Colors {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c)
	}
	b.WriteString("}")
	return b.String()
}
