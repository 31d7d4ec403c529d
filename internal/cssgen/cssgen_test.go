package cssgen

import (
	"errors"
	"strings"
	"testing"
)

func TestGradientCSS(t *testing.T) {
	tests := []struct {
		name string
		g    Gradient
		want string
	}{
		{
			name: "default linear",
			g:    DefaultGradient(),
			want: "background: linear-gradient(90deg, #6366f1 0%, #ec4899 100%);",
		},
		{
			name: "radial sorts stops",
			g: Gradient{Type: Radial, Stops: []ColorStop{
				{Color: "#ffffff", Position: 80},
				{Color: "#000000", Position: 10},
				{Color: "red", Position: 45.5},
			}},
			want: "background: radial-gradient(circle, #000000 10%, red 45.5%, #ffffff 80%);",
		},
		{
			name: "clamps angle and positions",
			g: Gradient{Type: Linear, Angle: 400, Stops: []ColorStop{
				{Color: "#111", Position: -5},
				{Color: "#222", Position: 150},
			}},
			want: "background: linear-gradient(360deg, #111 0%, #222 100%);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.g.CSS()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestGradientDoesNotMutateStops(t *testing.T) {
	g := Gradient{Type: Linear, Stops: []ColorStop{
		{Color: "#fff", Position: 100},
		{Color: "#000", Position: 0},
	}}
	if _, err := g.CSS(); err != nil {
		t.Fatal(err)
	}
	if g.Stops[0].Position != 100 {
		t.Error("CSS reordered the caller's stops")
	}
}

func TestGradientStopLimits(t *testing.T) {
	g := DefaultGradient()
	if _, err := g.RemoveStop(0); !errors.Is(err, ErrTooFewStops) {
		t.Errorf("expected ErrTooFewStops, got %v", err)
	}

	var err error
	for len(g.Stops) < MaxStops {
		g, err = g.AddStop()
		if err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.AddStop(); !errors.Is(err, ErrTooManyStops) {
		t.Errorf("expected ErrTooManyStops, got %v", err)
	}

	g2, err := g.RemoveStop(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(g2.Stops) != MaxStops-1 || len(g.Stops) != MaxStops {
		t.Errorf("RemoveStop lengths: new %d, old %d", len(g2.Stops), len(g.Stops))
	}
	if _, err := g2.RemoveStop(42); !errors.Is(err, ErrStopIndex) {
		t.Errorf("expected ErrStopIndex, got %v", err)
	}

	one := Gradient{Stops: []ColorStop{{Color: "#fff"}}}
	if _, err := one.CSS(); !errors.Is(err, ErrTooFewStops) {
		t.Errorf("expected ErrTooFewStops from CSS, got %v", err)
	}
	bad := Gradient{Stops: []ColorStop{{Color: "#fff"}, {Color: "notacolor"}}}
	if _, err := bad.CSS(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestBoxShadowCSS(t *testing.T) {
	tests := []struct {
		preset string
		want   string
	}{
		{"subtle", "box-shadow: 5px 5px 10px 0px #0000001a;"},
		{"medium", "box-shadow: 0px 10px 15px -3px #00000033;"},
		{"large", "box-shadow: 0px 20px 25px -5px #00000040;"},
		{"inset", "box-shadow: inset 0px 0px 10px 0px #0000004d;"},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			s, err := BoxShadowPreset(tt.preset)
			if err != nil {
				t.Fatal(err)
			}
			got, err := s.CSS()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}

	clamped, _ := BoxShadow{X: 99, Y: -99, Blur: 500, Spread: 0, Color: "#000"}.CSS()
	if clamped != "box-shadow: 50px -50px 100px 0px #000;" {
		t.Errorf("clamp: %s", clamped)
	}
	if _, err := (BoxShadow{Color: "#00000"}).CSS(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestTextShadowCSS(t *testing.T) {
	got, err := DefaultTextShadow().CSS()
	if err != nil {
		t.Fatal(err)
	}
	if want := "text-shadow: 2px 2px 3px rgba(0, 0, 0, 0.3);"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNeumorphismCSS(t *testing.T) {
	n := DefaultNeumorphism()
	got, err := n.CSS()
	if err != nil {
		t.Fatal(err)
	}
	want := ".neumorphism {\n" +
		"  width: 200px;\n" +
		"  height: 200px;\n" +
		"  border-radius: 50px;\n" +
		"  background: #e0e0e0;\n" +
		"  box-shadow: 20px 20px 30px rgb(209, 209, 209), -20px -20px 30px rgb(239, 239, 239);\n" +
		"}"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	n.Shape = ShapePressed
	shadow, _ := n.BoxShadow()
	if !strings.HasPrefix(shadow, "inset 20px 20px 30px") || strings.Count(shadow, "inset") != 2 {
		t.Errorf("pressed shadow = %s", shadow)
	}

	n.Shape = ShapeConcave
	shadow, _ = n.BoxShadow()
	if !strings.HasSuffix(shadow, "inset -5px -5px 10px rgba(255, 255, 255, 0.05)") {
		t.Errorf("concave shadow = %s", shadow)
	}

	n.Shape = "bumpy"
	if _, err := n.CSS(); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestGlassmorphismCSS(t *testing.T) {
	got, err := DefaultGlassmorphism().CSS()
	if err != nil {
		t.Fatal(err)
	}
	want := ".glassmorphism {\n" +
		"  background: rgba(255, 255, 255, 0.2);\n" +
		"  backdrop-filter: blur(8px) saturate(180%);\n" +
		"  -webkit-backdrop-filter: blur(8px) saturate(180%);\n" +
		"  border-radius: 10px;\n" +
		"  border: 1px solid rgba(255, 255, 255, 0.2);\n" +
		"}"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	g := DefaultGlassmorphism()
	g.Blur = 2.5
	got, _ = g.CSS()
	if !strings.Contains(got, "blur(2.5px)") {
		t.Errorf("fractional blur lost: %s", got)
	}
}

func TestFiltersCSS(t *testing.T) {
	if got := DefaultFilters().CSS(); got != "filter: none;" {
		t.Errorf("neutral filters = %s", got)
	}

	f := DefaultFilters()
	f.Blur = 1.5
	f.Brightness = 120
	f.HueRotate = 90
	f.Opacity = 50
	want := "filter: blur(1.5px) brightness(120%) hue-rotate(90deg) opacity(50%);"
	if got := f.CSS(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFlexboxCSS(t *testing.T) {
	f := DefaultFlexbox()
	f.Items = f.Items[:1]
	got, err := f.CSS()
	if err != nil {
		t.Fatal(err)
	}
	want := ".container {\n" +
		"  display: flex;\n" +
		"  flex-direction: row;\n" +
		"  justify-content: flex-start;\n" +
		"  align-items: stretch;\n" +
		"  flex-wrap: nowrap;\n" +
		"  gap: 8px;\n" +
		"}\n\n" +
		".item-1 {\n" +
		"  flex-grow: 0;\n" +
		"  flex-shrink: 1;\n" +
		"  flex-basis: auto;\n" +
		"  align-self: auto;\n" +
		"}"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	f.Container.FlexDirection = "diagonal"
	if _, err := f.CSS(); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestGridCSS(t *testing.T) {
	g := DefaultGrid()
	got, err := g.CSS()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, ".grid-container {\n  display: grid;\n  grid-template-columns: 1fr 1fr 1fr;\n  grid-template-rows: auto auto;") {
		t.Errorf("unexpected container:\n%s", got)
	}
	if strings.Count(got, ".item-") != 6 {
		t.Errorf("expected 6 item rules")
	}

	if ColumnsTemplate(0) != "1fr" || strings.Count(ColumnsTemplate(40), "1fr") != 12 {
		t.Error("ColumnsTemplate does not clamp to 1..12")
	}
	if RowsTemplate(3) != "auto auto auto" {
		t.Errorf("RowsTemplate(3) = %q", RowsTemplate(3))
	}
}

func TestTailwindClasses(t *testing.T) {
	got := DefaultTailwindOptions().Classes()
	want := "px-4 py-2 rounded-2 border border-gray-300 text-sm font-medium text-gray-700 bg-white shadow-sm w-auto h-auto block"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	o := DefaultTailwindOptions()
	o.BorderWidth = 0
	o.BorderRadius = 1
	o.Shadow = "DEFAULT"
	o.Width = "full"
	got = o.Classes()
	if strings.Contains(got, "border") {
		t.Errorf("border classes without a border: %s", got)
	}
	for _, c := range []string{"rounded ", "shadow ", "w-full"} {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in %s", c, got)
		}
	}

	for _, name := range TailwindPresets() {
		p, err := TailwindPreset(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.Classes() == "" {
			t.Errorf("preset %s produced no classes", name)
		}
	}
}

func TestCSSToTailwind(t *testing.T) {
	got, err := CSSToTailwind(".box { margin-top: 10px; display: flex; color: #123456; }")
	if err != nil {
		t.Fatal(err)
	}
	want := "mt-2.5 flex /* color: #123456 - No direct Tailwind equivalent */"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	if _, err := CSSToTailwind("   "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestTailwindToCSS(t *testing.T) {
	got, err := TailwindToCSS("flex  items-center\tmagic")
	if err != nil {
		t.Fatal(err)
	}
	want := "display: flex;\nalign-items: center;\n/* magic - No direct CSS equivalent */"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if _, err := TailwindToCSS(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}
