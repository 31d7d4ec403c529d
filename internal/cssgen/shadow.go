package cssgen

import (
	"fmt"
	"sort"

	"devtoolbox/internal/colormath"
)

// BoxShadow is the state of the box-shadow generator.
type BoxShadow struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Blur   int    `json:"blur"`
	Spread int    `json:"spread"`
	Color  string `json:"color"`
	Inset  bool   `json:"inset"`
}

var boxShadowPresets = map[string]BoxShadow{
	"subtle": {X: 5, Y: 5, Blur: 10, Spread: 0, Color: "#0000001a"},
	"medium": {X: 0, Y: 10, Blur: 15, Spread: -3, Color: "#00000033"},
	"large":  {X: 0, Y: 20, Blur: 25, Spread: -5, Color: "#00000040"},
	"inset":  {X: 0, Y: 0, Blur: 10, Spread: 0, Color: "#0000004d", Inset: true},
}

// BoxShadowPreset returns a named preset.
func BoxShadowPreset(name string) (BoxShadow, error) {
	p, ok := boxShadowPresets[name]
	if !ok {
		return BoxShadow{}, fmt.Errorf("%w: box-shadow preset %q", ErrInvalidOption, name)
	}
	return p, nil
}

// BoxShadowPresets lists the preset names in sorted order.
func BoxShadowPresets() []string {
	names := make([]string, 0, len(boxShadowPresets))
	for n := range boxShadowPresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CSS renders the box-shadow declaration.
func (s BoxShadow) CSS() (string, error) {
	c, err := checkColor("color", s.Color)
	if err != nil {
		return "", err
	}
	prefix := ""
	if s.Inset {
		prefix = "inset "
	}
	return fmt.Sprintf("box-shadow: %s%dpx %dpx %dpx %dpx %s;",
		prefix,
		clamp(s.X, -50, 50),
		clamp(s.Y, -50, 50),
		clamp(s.Blur, 0, 100),
		clamp(s.Spread, -50, 50),
		c,
	), nil
}

// TextShadow is the state of the text-shadow generator.
type TextShadow struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Blur    int     `json:"blur"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// DefaultTextShadow is the generator's initial soft black shadow.
func DefaultTextShadow() TextShadow {
	return TextShadow{X: 2, Y: 2, Blur: 3, Color: "#000000", Opacity: 30}
}

// CSS renders the text-shadow declaration.
func (s TextShadow) CSS() (string, error) {
	rgba, err := colormath.RGBAString(s.Color, s.Opacity)
	if err != nil {
		return "", fmt.Errorf("%w: color: %v", ErrInvalidColor, err)
	}
	return fmt.Sprintf("text-shadow: %dpx %dpx %dpx %s;",
		clamp(s.X, -20, 20),
		clamp(s.Y, -20, 20),
		clamp(s.Blur, 0, 20),
		rgba,
	), nil
}
