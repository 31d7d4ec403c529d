package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"devtoolbox/internal/cssgen"
)

// CSSResponse is the output of every CSS generator.
type CSSResponse struct {
	CSS string `json:"css"`
}

// cssTool decodes the request over def and renders it.
func cssTool[T any](w http.ResponseWriter, r *http.Request, def T, render func(T) (string, error)) {
	if !decodeJSON(w, r, &def) {
		return
	}
	css, err := render(def)
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CSSResponse{CSS: css})
}

func (s *Server) handleGradient(w http.ResponseWriter, r *http.Request) {
	cssTool(w, r, cssgen.DefaultGradient(), cssgen.Gradient.CSS)
}

func (s *Server) handleTextShadow(w http.ResponseWriter, r *http.Request) {
	cssTool(w, r, cssgen.DefaultTextShadow(), cssgen.TextShadow.CSS)
}

func (s *Server) handleNeumorphism(w http.ResponseWriter, r *http.Request) {
	cssTool(w, r, cssgen.DefaultNeumorphism(), cssgen.Neumorphism.CSS)
}

func (s *Server) handleGlassmorphism(w http.ResponseWriter, r *http.Request) {
	cssTool(w, r, cssgen.DefaultGlassmorphism(), cssgen.Glassmorphism.CSS)
}

func (s *Server) handleFlexbox(w http.ResponseWriter, r *http.Request) {
	cssTool(w, r, cssgen.DefaultFlexbox(), cssgen.Flexbox.CSS)
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	cssTool(w, r, cssgen.DefaultGrid(), cssgen.Grid.CSS)
}

// presetRequest picks the starting point for preset-based generators.
type presetRequest struct {
	Preset string `json:"preset"`
}

// decodePreset decodes the request over the named preset, or over def
// when no preset is named.
func decodePreset[T any](w http.ResponseWriter, r *http.Request, def T, lookup func(string) (T, error)) (T, bool) {
	data, ok := readJSONBody(w, r)
	if !ok {
		return def, false
	}
	var p presetRequest
	if err := json.Unmarshal(data, &p); err != nil {
		badJSONRequest(w, r, err)
		return def, false
	}
	if p.Preset != "" {
		preset, err := lookup(strings.ToLower(p.Preset))
		if err != nil {
			toolError(w, r, err)
			return def, false
		}
		def = preset
	}
	if err := json.Unmarshal(data, &def); err != nil {
		badJSONRequest(w, r, err)
		return def, false
	}
	return def, true
}

func (s *Server) handleBoxShadow(w http.ResponseWriter, r *http.Request) {
	def, _ := cssgen.BoxShadowPreset("subtle")
	shadow, ok := decodePreset(w, r, def, cssgen.BoxShadowPreset)
	if !ok {
		return
	}
	css, err := shadow.CSS()
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CSSResponse{CSS: css})
}

// FiltersResponse adds the individual filter functions.
type FiltersResponse struct {
	CSS       string   `json:"css"`
	Functions []string `json:"functions"`
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	f := cssgen.DefaultFilters()
	if !decodeJSON(w, r, &f) {
		return
	}
	fns := f.Functions()
	if fns == nil {
		fns = []string{}
	}
	writeJSON(w, http.StatusOK, FiltersResponse{CSS: f.CSS(), Functions: fns})
}

// TailwindResponse is the generated class list.
type TailwindResponse struct {
	Classes string   `json:"classes"`
	Presets []string `json:"presets"`
}

func (s *Server) handleTailwind(w http.ResponseWriter, r *http.Request) {
	opts, ok := decodePreset(w, r, cssgen.DefaultTailwindOptions(), cssgen.TailwindPreset)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, TailwindResponse{Classes: opts.Classes(), Presets: cssgen.TailwindPresets()})
}

// CSSConvertRequest converts Input in the given direction.
type CSSConvertRequest struct {
	Direction string `json:"direction"` // "css-to-tailwind" or "tailwind-to-css"
	Input     string `json:"input"`
}

// CSSConvertResponse is the converted text.
type CSSConvertResponse struct {
	Direction string `json:"direction"`
	Output    string `json:"output"`
}

var errDirection = errors.New(`direction must be "css-to-tailwind" or "tailwind-to-css"`)

func (s *Server) handleCSSConvert(w http.ResponseWriter, r *http.Request) {
	req := CSSConvertRequest{Direction: "css-to-tailwind"}
	if !decodeJSON(w, r, &req) {
		return
	}

	var out string
	var err error
	switch strings.ToLower(strings.TrimSpace(req.Direction)) {
	case "css-to-tailwind", "css":
		req.Direction = "css-to-tailwind"
		out, err = cssgen.CSSToTailwind(req.Input)
	case "tailwind-to-css", "tailwind":
		req.Direction = "tailwind-to-css"
		out, err = cssgen.TailwindToCSS(req.Input)
	default:
		badRequest(w, r, errDirection)
		return
	}
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CSSConvertResponse{Direction: req.Direction, Output: out})
}
