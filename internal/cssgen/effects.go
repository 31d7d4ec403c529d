package cssgen

import (
	"fmt"
	"strings"

	"devtoolbox/internal/colormath"
)

// NeumorphismShape selects how the soft shadows are arranged.
type NeumorphismShape string

const (
	ShapeFlat    NeumorphismShape = "flat"
	ShapeConcave NeumorphismShape = "concave"
	ShapeConvex  NeumorphismShape = "convex"
	ShapePressed NeumorphismShape = "pressed"
)

// Neumorphism is the state of the neumorphism generator.
type Neumorphism struct {
	Size      int              `json:"size"`
	Radius    int              `json:"radius"`
	Distance  int              `json:"distance"`
	Intensity int              `json:"intensity"`
	Blur      int              `json:"blur"`
	Shape     NeumorphismShape `json:"shape"`
	Color     string           `json:"color"`
}

func DefaultNeumorphism() Neumorphism {
	return Neumorphism{
		Size:      200,
		Radius:    50,
		Distance:  20,
		Intensity: 15,
		Blur:      30,
		Shape:     ShapeFlat,
		Color:     "#e0e0e0",
	}
}

// BoxShadow returns the box-shadow value without the property name.
func (n Neumorphism) BoxShadow() (string, error) {
	shape, err := oneOf("shape", string(n.Shape), string(ShapeFlat),
		string(ShapeFlat), string(ShapeConcave), string(ShapeConvex), string(ShapePressed))
	if err != nil {
		return "", err
	}
	intensity := clamp(n.Intensity, 5, 30)
	light, err := colormath.Lighten(n.Color, intensity)
	if err != nil {
		return "", fmt.Errorf("%w: color: %v", ErrInvalidColor, err)
	}
	dark, _ := colormath.Darken(n.Color, intensity)

	d := clamp(n.Distance, 5, 50)
	blur := clamp(n.Blur, 10, 80)
	outer := []string{
		fmt.Sprintf("%dpx %dpx %dpx %s", d, d, blur, dark.CSS()),
		fmt.Sprintf("-%dpx -%dpx %dpx %s", d, d, blur, light.CSS()),
	}

	var layers []string
	switch NeumorphismShape(shape) {
	case ShapeConcave:
		layers = append(outer,
			"inset 5px 5px 10px rgba(0, 0, 0, 0.05)",
			"inset -5px -5px 10px rgba(255, 255, 255, 0.05)",
		)
	case ShapeConvex:
		layers = append(outer,
			"inset -3px -3px 6px rgba(0, 0, 0, 0.01)",
			"inset 3px 3px 6px rgba(255, 255, 255, 0.05)",
		)
	case ShapePressed:
		layers = []string{"inset " + outer[0], "inset " + outer[1]}
	default:
		layers = outer
	}
	return strings.Join(layers, ", "), nil
}

// CSS renders the .neumorphism rule.
func (n Neumorphism) CSS() (string, error) {
	shadow, err := n.BoxShadow()
	if err != nil {
		return "", err
	}
	size := fmt.Sprintf("%dpx", clamp(n.Size, 50, 300))
	return block(".neumorphism", [][2]string{
		{"width", size},
		{"height", size},
		{"border-radius", fmt.Sprintf("%dpx", clamp(n.Radius, 0, 100))},
		{"background", strings.TrimSpace(n.Color)},
		{"box-shadow", shadow},
	}), nil
}

// Glassmorphism is the state of the glassmorphism generator.
type Glassmorphism struct {
	Opacity       float64 `json:"opacity"`
	Blur          float64 `json:"blur"`
	Saturation    int     `json:"saturation"`
	BorderRadius  int     `json:"border_radius"`
	BorderOpacity float64 `json:"border_opacity"`
	Background    string  `json:"background"`
}

func DefaultGlassmorphism() Glassmorphism {
	return Glassmorphism{
		Opacity:       20,
		Blur:          8,
		Saturation:    180,
		BorderRadius:  10,
		BorderOpacity: 20,
		Background:    "#ffffff",
	}
}

// CSS renders the .glassmorphism rule.
func (g Glassmorphism) CSS() (string, error) {
	bg, err := colormath.RGBAString(g.Background, g.Opacity)
	if err != nil {
		return "", fmt.Errorf("%w: background: %v", ErrInvalidColor, err)
	}
	border, _ := colormath.RGBAString("#ffffff", g.BorderOpacity)
	filter := fmt.Sprintf("blur(%spx) saturate(%d%%)", num(clampF(g.Blur, 0, 20)), clamp(g.Saturation, 100, 300))

	return block(".glassmorphism", [][2]string{
		{"background", bg},
		{"backdrop-filter", filter},
		{"-webkit-backdrop-filter", filter},
		{"border-radius", fmt.Sprintf("%dpx", clamp(g.BorderRadius, 0, 50))},
		{"border", "1px solid " + border},
	}), nil
}

// Filters is the state of the CSS filter editor. Zero values are not
// neutral for every field, so use DefaultFilters as the starting point.
type Filters struct {
	Blur       float64 `json:"blur"`
	Brightness int     `json:"brightness"`
	Contrast   int     `json:"contrast"`
	Grayscale  int     `json:"grayscale"`
	HueRotate  int     `json:"hue_rotate"`
	Invert     int     `json:"invert"`
	Opacity    int     `json:"opacity"`
	Saturate   int     `json:"saturate"`
	Sepia      int     `json:"sepia"`
}

// DefaultFilters returns every filter at its neutral value.
func DefaultFilters() Filters {
	return Filters{Brightness: 100, Contrast: 100, Opacity: 100, Saturate: 100}
}

// Functions returns the non-neutral filter functions in CSS order.
func (f Filters) Functions() []string {
	var fns []string
	if b := clampF(f.Blur, 0, 20); b > 0 {
		fns = append(fns, fmt.Sprintf("blur(%spx)", num(b)))
	}
	if v := clamp(f.Brightness, 0, 200); v != 100 {
		fns = append(fns, fmt.Sprintf("brightness(%d%%)", v))
	}
	if v := clamp(f.Contrast, 0, 200); v != 100 {
		fns = append(fns, fmt.Sprintf("contrast(%d%%)", v))
	}
	if v := clamp(f.Grayscale, 0, 100); v > 0 {
		fns = append(fns, fmt.Sprintf("grayscale(%d%%)", v))
	}
	if v := clamp(f.HueRotate, 0, 360); v > 0 {
		fns = append(fns, fmt.Sprintf("hue-rotate(%ddeg)", v))
	}
	if v := clamp(f.Invert, 0, 100); v > 0 {
		fns = append(fns, fmt.Sprintf("invert(%d%%)", v))
	}
	if v := clamp(f.Opacity, 0, 100); v != 100 {
		fns = append(fns, fmt.Sprintf("opacity(%d%%)", v))
	}
	if v := clamp(f.Saturate, 0, 200); v != 100 {
		fns = append(fns, fmt.Sprintf("saturate(%d%%)", v))
	}
	if v := clamp(f.Sepia, 0, 100); v > 0 {
		fns = append(fns, fmt.Sprintf("sepia(%d%%)", v))
	}
	return fns
}

// CSS renders the filter declaration, or "filter: none;" when every
// function is neutral.
func (f Filters) CSS() string {
	fns := f.Functions()
	if len(fns) == 0 {
		return "filter: none;"
	}
	return "filter: " + strings.Join(fns, " ") + ";"
}
