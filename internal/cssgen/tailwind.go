package cssgen

import (
	"fmt"
	"sort"
	"strings"
)

// TailwindOptions is the state of the Tailwind class generator.
type TailwindOptions struct {
	PaddingX        int    `json:"padding_x"`
	PaddingY        int    `json:"padding_y"`
	MarginX         int    `json:"margin_x"`
	MarginY         int    `json:"margin_y"`
	BorderRadius    int    `json:"border_radius"`
	BorderWidth     int    `json:"border_width"`
	FontSize        string `json:"font_size"`
	FontWeight      string `json:"font_weight"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
	BorderColor     string `json:"border_color"`
	Shadow          string `json:"shadow"`
	Width           string `json:"width"`
	Height          string `json:"height"`
	Display         string `json:"display"`
}

// DefaultTailwindOptions matches the generator's reset state.
func DefaultTailwindOptions() TailwindOptions {
	return TailwindOptions{
		PaddingX:        4,
		PaddingY:        2,
		BorderRadius:    2,
		BorderWidth:     1,
		FontSize:        "sm",
		FontWeight:      "medium",
		TextColor:       "gray-700",
		BackgroundColor: "white",
		BorderColor:     "gray-300",
		Shadow:          "sm",
		Width:           "auto",
		Height:          "auto",
		Display:         "block",
	}
}

var tailwindPresets = map[string]TailwindOptions{
	"button": {
		PaddingX: 4, PaddingY: 2, BorderRadius: 2,
		FontSize: "sm", FontWeight: "semibold", TextColor: "white",
		BackgroundColor: "blue-500", Shadow: "DEFAULT",
		Width: "auto", Height: "auto", Display: "inline-block",
	},
	"card": {
		PaddingX: 6, PaddingY: 6, BorderRadius: 8, BorderWidth: 1,
		FontSize: "base", FontWeight: "normal", TextColor: "gray-700",
		BackgroundColor: "white", BorderColor: "gray-200", Shadow: "md",
		Width: "full", Height: "auto", Display: "block",
	},
	"input": {
		PaddingX: 3, PaddingY: 2, BorderRadius: 1, BorderWidth: 1,
		FontSize: "sm", FontWeight: "normal", TextColor: "gray-900",
		BackgroundColor: "white", BorderColor: "gray-300",
		Width: "full", Height: "auto", Display: "block",
	},
}

// TailwindPreset returns a named preset.
func TailwindPreset(name string) (TailwindOptions, error) {
	p, ok := tailwindPresets[name]
	if !ok {
		return TailwindOptions{}, fmt.Errorf("%w: tailwind preset %q", ErrInvalidOption, name)
	}
	return p, nil
}

// TailwindPresets lists preset names in sorted order.
func TailwindPresets() []string {
	names := make([]string, 0, len(tailwindPresets))
	for n := range tailwindPresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Classes builds the class attribute value.
func (o TailwindOptions) Classes() string {
	var cls []string
	add := func(ok bool, c string) {
		if ok {
			cls = append(cls, c)
		}
	}

	px, py := clamp(o.PaddingX, 0, 12), clamp(o.PaddingY, 0, 12)
	mx, my := clamp(o.MarginX, 0, 12), clamp(o.MarginY, 0, 12)
	add(px > 0, fmt.Sprintf("px-%d", px))
	add(py > 0, fmt.Sprintf("py-%d", py))
	add(mx > 0, fmt.Sprintf("mx-%d", mx))
	add(my > 0, fmt.Sprintf("my-%d", my))

	radius := clamp(o.BorderRadius, 0, 8)
	if radius == 1 {
		add(true, "rounded")
	} else {
		add(radius > 0, fmt.Sprintf("rounded-%d", radius))
	}
	width := clamp(o.BorderWidth, 0, 4)
	if width == 1 {
		add(true, "border")
	} else {
		add(width > 0, fmt.Sprintf("border-%d", width))
	}
	add(width > 0 && o.BorderColor != "", "border-"+o.BorderColor)

	add(o.FontSize != "", "text-"+o.FontSize)
	add(o.FontWeight != "", "font-"+o.FontWeight)
	add(o.TextColor != "", "text-"+o.TextColor)
	add(o.BackgroundColor != "", "bg-"+o.BackgroundColor)

	switch o.Shadow {
	case "":
	case "DEFAULT":
		add(true, "shadow")
	default:
		add(true, "shadow-"+o.Shadow)
	}

	cls = append(cls, "w-"+orDefault(o.Width, "auto"), "h-"+orDefault(o.Height, "auto"))
	add(o.Display != "", o.Display)

	return strings.Join(cls, " ")
}

var cssToTailwind = map[string]map[string]string{
	"margin-top":       {"10px": "mt-2.5", "20px": "mt-5", "16px": "mt-4"},
	"margin-bottom":    {"10px": "mb-2.5", "20px": "mb-5", "16px": "mb-4"},
	"margin-left":      {"10px": "ml-2.5", "20px": "ml-5", "16px": "ml-4"},
	"margin-right":     {"10px": "mr-2.5", "20px": "mr-5", "16px": "mr-4"},
	"padding-top":      {"10px": "pt-2.5", "20px": "pt-5", "16px": "pt-4"},
	"padding-bottom":   {"10px": "pb-2.5", "20px": "pb-5", "16px": "pb-4"},
	"padding-left":     {"10px": "pl-2.5", "20px": "pl-5", "16px": "pl-4"},
	"padding-right":    {"10px": "pr-2.5", "20px": "pr-5", "16px": "pr-4"},
	"font-size":        {"12px": "text-xs", "14px": "text-sm", "16px": "text-base", "18px": "text-lg", "20px": "text-xl"},
	"font-weight":      {"400": "font-normal", "500": "font-medium", "600": "font-semibold", "700": "font-bold"},
	"text-align":       {"center": "text-center", "left": "text-left", "right": "text-right"},
	"display":          {"flex": "flex", "block": "block", "inline-block": "inline-block", "grid": "grid"},
	"flex-direction":   {"row": "flex-row", "column": "flex-col"},
	"align-items":      {"center": "items-center", "flex-start": "items-start", "flex-end": "items-end"},
	"justify-content":  {"center": "justify-center", "flex-start": "justify-start", "flex-end": "justify-end", "space-between": "justify-between"},
	"color":            {"#ffffff": "text-white", "#000000": "text-black", "#FF0000": "text-red-500", "#0000FF": "text-blue-500"},
	"background-color": {"#ffffff": "bg-white", "#000000": "bg-black", "#FF0000": "bg-red-500", "#0000FF": "bg-blue-500"},
	"border-radius":    {"4px": "rounded", "8px": "rounded-lg", "9999px": "rounded-full"},
	"border":           {"1px solid #000": "border border-black", "1px solid #ddd": "border border-gray-200"},
}

var tailwindToCSS = map[string]string{
	"mt-2.5":          "margin-top: 10px;",
	"mb-2.5":          "margin-bottom: 10px;",
	"ml-2.5":          "margin-left: 10px;",
	"mr-2.5":          "margin-right: 10px;",
	"pt-2.5":          "padding-top: 10px;",
	"pb-2.5":          "padding-bottom: 10px;",
	"pl-2.5":          "padding-left: 10px;",
	"pr-2.5":          "padding-right: 10px;",
	"mt-5":            "margin-top: 20px;",
	"mb-5":            "margin-bottom: 20px;",
	"ml-5":            "margin-left: 20px;",
	"mr-5":            "margin-right: 20px;",
	"pt-5":            "padding-top: 20px;",
	"pb-5":            "padding-bottom: 20px;",
	"pl-5":            "padding-left: 20px;",
	"pr-5":            "padding-right: 20px;",
	"text-xs":         "font-size: 12px;",
	"text-sm":         "font-size: 14px;",
	"text-base":       "font-size: 16px;",
	"text-lg":         "font-size: 18px;",
	"text-xl":         "font-size: 20px;",
	"font-normal":     "font-weight: 400;",
	"font-medium":     "font-weight: 500;",
	"font-semibold":   "font-weight: 600;",
	"font-bold":       "font-weight: 700;",
	"text-center":     "text-align: center;",
	"text-left":       "text-align: left;",
	"text-right":      "text-align: right;",
	"flex":            "display: flex;",
	"block":           "display: block;",
	"inline-block":    "display: inline-block;",
	"grid":            "display: grid;",
	"flex-row":        "flex-direction: row;",
	"flex-col":        "flex-direction: column;",
	"items-center":    "align-items: center;",
	"items-start":     "align-items: flex-start;",
	"items-end":       "align-items: flex-end;",
	"justify-center":  "justify-content: center;",
	"justify-start":   "justify-content: flex-start;",
	"justify-end":     "justify-content: flex-end;",
	"justify-between": "justify-content: space-between;",
	"text-white":      "color: #ffffff;",
	"text-black":      "color: #000000;",
	"text-red-500":    "color: #ef4444;",
	"text-blue-500":   "color: #3b82f6;",
	"bg-white":        "background-color: #ffffff;",
	"bg-black":        "background-color: #000000;",
	"bg-red-500":      "background-color: #ef4444;",
	"bg-blue-500":     "background-color: #3b82f6;",
	"rounded":         "border-radius: 4px;",
	"rounded-lg":      "border-radius: 8px;",
	"rounded-full":    "border-radius: 9999px;",
	"border":          "border: 1px solid;",
	"border-black":    "border-color: #000000;",
	"border-gray-200": "border-color: #e5e7eb;",
}

// CSSToTailwind converts "prop: value;" declarations into classes joined
// by a space. Braces and selectors are skipped; declarations without a
// mapping become comment placeholders.
func CSSToTailwind(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}

	var out []string
	for _, rule := range strings.Split(input, ";") {
		rule = strings.TrimSpace(rule)
		if i := strings.LastIndexByte(rule, '{'); i >= 0 {
			rule = strings.TrimSpace(rule[i+1:])
		}
		if rule == "" || strings.HasPrefix(rule, "}") {
			continue
		}
		prop, value, ok := strings.Cut(rule, ":")
		prop, value = strings.TrimSpace(prop), strings.TrimSpace(value)
		if !ok || prop == "" || value == "" {
			continue
		}
		if cls, ok := cssToTailwind[prop][value]; ok {
			out = append(out, cls)
			continue
		}
		out = append(out, fmt.Sprintf("/* %s: %s - No direct Tailwind equivalent */", prop, value))
	}
	return strings.Join(out, " "), nil
}

// TailwindToCSS converts whitespace separated classes into one CSS
// declaration per line.
func TailwindToCSS(input string) (string, error) {
	classes := strings.Fields(input)
	if len(classes) == 0 {
		return "", ErrEmptyInput
	}

	lines := make([]string, 0, len(classes))
	for _, cls := range classes {
		if decl, ok := tailwindToCSS[cls]; ok {
			lines = append(lines, decl)
			continue
		}
		lines = append(lines, fmt.Sprintf("/* %s - No direct CSS equivalent */", cls))
	}
	return strings.Join(lines, "\n"), nil
}
