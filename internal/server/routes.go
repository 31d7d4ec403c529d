package server

import (
	"net/http"
	"strings"
)

// Route is one tool endpoint.
type Route struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Tool        string `json:"tool"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Public      bool   `json:"public"`

	handler http.HandlerFunc
}

func (s *Server) buildRoutes() []Route {
	get, post := http.MethodGet, http.MethodPost
	return []Route{
		{get, "/healthz", "service.health", "service", "Health", "Liveness and uptime", true, s.handleHealth},
		{get, "/v1/tools", "service.tools", "service", "Tools", "Catalog of every tool", true, s.handleTools},
		{get, "/api/stats", "service.stats", "service", "Stats", "Request totals, throughput and latency", true, s.stats.StatsHandler},
		{get, "/api/history", "service.history", "service", "History", "Hourly request samples for the last day", true, s.stats.HistoryHandler},
		{get, "/api/usage", "service.usage", "service", "Usage", "Per-client usage this month", false, s.handleUsage},

		{post, "/v1/color/convert", "color.convert", "color", "Color Converter", "Convert between hex, RGB, HSL and CSS color names", false, s.handleColorConvert},
		{post, "/v1/color/contrast", "color.contrast", "color", "Contrast Checker", "WCAG contrast ratio and AA/AAA conformance", false, s.handleColorContrast},
		{post, "/v1/color/palette", "color.palette", "color", "Palette Generator", "Harmonic palettes from a base color", false, s.handleColorPalette},
		{post, "/v1/color/blindness", "color.blindness", "color", "Color Blindness Simulator", "How a color looks with each color vision deficiency", false, s.handleColorBlindness},
		{post, "/v1/color/shades", "color.shades", "color", "Shades", "Lighter and darker variants of a color", false, s.handleColorShades},
		{get, "/v1/color/named", "color.named", "color", "Named Colors", "Search the CSS named colors", false, s.handleColorNamed},
		{get, "/v1/color/random", "color.random", "color", "Random Color", "A random color in every notation", false, s.handleColorRandom},

		{post, "/v1/css/gradient", "css.gradient", "css", "Gradient Generator", "Linear and radial gradients", false, s.handleGradient},
		{post, "/v1/css/box-shadow", "css.box-shadow", "css", "Box Shadow Generator", "box-shadow declarations and presets", false, s.handleBoxShadow},
		{post, "/v1/css/text-shadow", "css.text-shadow", "css", "Text Shadow Generator", "text-shadow declarations", false, s.handleTextShadow},
		{post, "/v1/css/neumorphism", "css.neumorphism", "css", "Neumorphism Generator", "Soft UI paired shadows", false, s.handleNeumorphism},
		{post, "/v1/css/glassmorphism", "css.glassmorphism", "css", "Glassmorphism Generator", "Frosted glass panels", false, s.handleGlassmorphism},
		{post, "/v1/css/filters", "css.filters", "css", "CSS Filters", "filter declarations", false, s.handleFilters},
		{post, "/v1/css/flexbox", "css.flexbox", "css", "Flexbox Playground", "Flex container and item rules", false, s.handleFlexbox},
		{post, "/v1/css/grid", "css.grid", "css", "Grid Generator", "Grid container and item rules", false, s.handleGrid},
		{post, "/v1/css/tailwind", "css.tailwind", "css", "Tailwind Generator", "Tailwind utility classes from options", false, s.handleTailwind},
		{post, "/v1/css/convert", "css.convert", "css", "CSS to Tailwind", "Convert between CSS declarations and Tailwind classes", false, s.handleCSSConvert},

		{post, "/v1/code/json", "code.json", "code", "JSON Formatter", "Format, minify and validate JSON", false, s.handleJSON},
		{post, "/v1/code/base64", "code.base64", "code", "Base64", "Encode and decode Base64", false, s.handleBase64},
		{post, "/v1/code/url", "code.url", "code", "URL Encoder", "Percent-encode and decode URL components", false, s.handleURL},

		{post, "/v1/image/compress", "image.compress", "image", "Image Compressor", "Downscale and re-encode images", false, s.handleImageCompress},
		{post, "/v1/image/blindness", "image.blindness", "image", "Image Blindness Simulator", "Simulate a color vision deficiency over an image", false, s.handleImageBlindness},
		{post, "/v1/image/pick", "image.pick", "image", "Color Picker", "Sample a pixel from an image", false, s.handleImagePick},
	}
}

// Routes returns the route table in catalog order.
func (s *Server) Routes() []Route {
	out := make([]Route, len(s.routes))
	copy(out, s.routes)
	return out
}

func (s *Server) toolFor(path string) string {
	if rt, ok := s.byPath[path]; ok {
		return rt.Tool
	}
	return "unknown"
}

func (s *Server) isPublic(path string) bool {
	rt, ok := s.byPath[path]
	return ok && rt.Public
}

// ToolsResponse is the JSON response for /v1/tools
type ToolsResponse struct {
	Count      int                `json:"count"`
	Categories map[string][]Route `json:"categories"`
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	resp := ToolsResponse{Categories: make(map[string][]Route)}
	category := strings.ToLower(r.URL.Query().Get("category"))
	for _, rt := range s.routes {
		if category != "" && rt.Category != category {
			continue
		}
		resp.Categories[rt.Category] = append(resp.Categories[rt.Category], rt)
		resp.Count++
	}
	writeJSON(w, http.StatusOK, resp)
}
