package server

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"devtoolbox/internal/colormath"
)

// ConvertRequest takes either a color string or an HSL triple.
type ConvertRequest struct {
	Value string         `json:"value"`
	HSL   *colormath.HSL `json:"hsl,omitempty"`
}

// ConvertResponse is a conversion plus the closest CSS color name.
type ConvertResponse struct {
	colormath.Conversion
	Nearest colormath.NearestMatch `json:"nearest"`
}

func (s *Server) handleColorConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var conv colormath.Conversion
	if req.HSL != nil {
		conv = colormath.ConvertHSL(*req.HSL)
	} else {
		var err error
		if conv, err = colormath.Convert(req.Value); err != nil {
			toolError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, ConvertResponse{Conversion: conv, Nearest: colormath.NearestNamed(conv.RGB)})
}

// ContrastRequest is the checker state; Swap exchanges the colors first.
type ContrastRequest struct {
	colormath.ContrastInput
	Swap bool `json:"swap"`
}

func (s *Server) handleColorContrast(w http.ResponseWriter, r *http.Request) {
	req := ContrastRequest{ContrastInput: colormath.ContrastInput{FontSize: 16}}
	if !decodeJSON(w, r, &req) {
		return
	}
	in := req.ContrastInput
	if req.Swap {
		in = in.Swap()
	}
	report, err := colormath.CheckContrast(in)
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// PaletteRequest names a base color and a harmony scheme.
type PaletteRequest struct {
	Base   string `json:"base"`
	Scheme string `json:"scheme"`
}

// PaletteResponse is a palette and its CSS custom properties.
type PaletteResponse struct {
	colormath.Palette
	CSS string `json:"css"`
}

func (s *Server) handleColorPalette(w http.ResponseWriter, r *http.Request) {
	req := PaletteRequest{Scheme: string(colormath.Analogous)}
	if !decodeJSON(w, r, &req) {
		return
	}
	scheme, err := colormath.ParseScheme(req.Scheme)
	if err != nil {
		toolError(w, r, err)
		return
	}
	p, err := colormath.GeneratePalette(req.Base, scheme)
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PaletteResponse{Palette: p, CSS: p.CSSVariables()})
}

// ColorRequest carries a single color.
type ColorRequest struct {
	Color string `json:"color"`
}

// BlindnessResponse lists a color under every deficiency.
type BlindnessResponse struct {
	Color       string                      `json:"color"`
	Simulations []colormath.SimulatedSwatch `json:"simulations"`
}

func (s *Server) handleColorBlindness(w http.ResponseWriter, r *http.Request) {
	var req ColorRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := colormath.ParseColor(req.Color)
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BlindnessResponse{Color: c.Hex(), Simulations: colormath.SimulateAll(c)})
}

// ShadesRequest asks for variants with Amount added to or taken from
// every channel.
type ShadesRequest struct {
	Color  string `json:"color"`
	Amount int    `json:"amount"`
}

// ShadesResponse holds the variants as hex.
type ShadesResponse struct {
	Base    string `json:"base"`
	Lighter string `json:"lighter"`
	Darker  string `json:"darker"`
}

func (s *Server) handleColorShades(w http.ResponseWriter, r *http.Request) {
	req := ShadesRequest{Amount: 10}
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := colormath.ParseColor(req.Color)
	if err != nil {
		toolError(w, r, err)
		return
	}
	hex := c.Hex()
	lighter, err := colormath.Lighten(hex, req.Amount)
	if err != nil {
		toolError(w, r, err)
		return
	}
	darker, err := colormath.Darken(hex, req.Amount)
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ShadesResponse{Base: hex, Lighter: lighter.Hex(), Darker: darker.Hex()})
}

// NamedResponse is a search result, flat or grouped by first letter.
type NamedResponse struct {
	Count  int                     `json:"count"`
	Colors []colormath.NamedColor  `json:"colors,omitempty"`
	Groups []colormath.LetterGroup `json:"groups,omitempty"`
}

func (s *Server) handleColorNamed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if near := q.Get("nearest"); near != "" {
		c, err := colormath.ParseColor(near)
		if err != nil {
			toolError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, colormath.NearestNamed(c))
		return
	}

	colors := colormath.SearchNamed(q.Get("q"))
	resp := NamedResponse{Count: len(colors)}
	group, _ := strconv.ParseBool(q.Get("group"))
	if group {
		resp.Groups = colormath.GroupNamedByLetter(colors)
	} else {
		resp.Colors = colors
	}
	writeJSON(w, http.StatusOK, resp)
}

var errBadSeed = errors.New("seed must be an integer")

func (s *Server) handleColorRandom(w http.ResponseWriter, r *http.Request) {
	hex := colormath.Random(nil)
	if seed := strings.TrimSpace(r.URL.Query().Get("seed")); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			badRequest(w, r, errBadSeed)
			return
		}
		hex = colormath.Random(rand.New(rand.NewSource(n)))
	}
	conv, err := colormath.Convert(hex)
	if err != nil {
		internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}
