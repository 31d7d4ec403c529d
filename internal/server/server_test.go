package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"devtoolbox/internal/auth"
	"devtoolbox/internal/colormath"
	"devtoolbox/internal/config"
	"devtoolbox/internal/imaging"
	"devtoolbox/internal/usage"
)

func testConfig() *config.Config {
	return &config.Config{
		Listen:         "127.0.0.1:0",
		MetricsListen:  "127.0.0.1:0",
		TimeoutSec:     5,
		MaxConcurrent:  8,
		MaxUploadMB:    1,
		MaxImagePixels: 1_000_000,
		Env: &config.EnvConfig{
			Env:            config.Development,
			AllowedOrigins: []string{"https://app.example.com"},
			LogLevel:       "info",
		},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(testConfig(), nil, nil)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestColorConvert(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name    string
		body    string
		wantHex string
		exact   bool
	}{
		{"hex", `{"value":"#f00"}`, "#ff0000", true},
		{"rgb", `{"value":"rgb(99, 102, 241)"}`, "#6366f1", false},
		{"name", `{"value":"tomato"}`, "#ff6347", true},
		{"hsl triple", `{"hsl":{"h":0,"s":0,"l":100}}`, "#ffffff", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/color/convert", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body)
			}
			resp := decode[ConvertResponse](t, rec)
			if resp.Hex != tt.wantHex {
				t.Errorf("hex = %s, want %s", resp.Hex, tt.wantHex)
			}
			if resp.Nearest.Exact != tt.exact {
				t.Errorf("nearest exact = %v, want %v", resp.Nearest.Exact, tt.exact)
			}
		})
	}

	rec := do(t, h, http.MethodPost, "/v1/color/convert", `{"value":"not-a-color"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid color status = %d", rec.Code)
	}
	if he := decode[HandlerError](t, rec); he.ErrorName != "Invalid Input" || he.CallerInfo == "" {
		t.Errorf("unexpected error body %+v", he)
	}
}

func TestColorContrast(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodPost, "/v1/color/contrast", `{"foreground":"#000","background":"#fff"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	report := decode[colormath.ContrastReport](t, rec)
	if report.Formatted != "21.00:1" || !report.AA || !report.AAA {
		t.Errorf("unexpected report %+v", report)
	}
	if report.FontSize != 16 || report.LargeText {
		t.Errorf("default font size not applied: %+v", report)
	}

	rec = do(t, h, http.MethodPost, "/v1/color/contrast", `{"foreground":"#000","background":"#fff","swap":true}`)
	if report := decode[colormath.ContrastReport](t, rec); report.Foreground != "#ffffff" {
		t.Errorf("swap ignored: foreground = %s", report.Foreground)
	}
}

func TestColorPaletteAndShades(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodPost, "/v1/color/palette", `{"base":"#6366f1","scheme":"complementary"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("palette status = %d: %s", rec.Code, rec.Body)
	}
	p := decode[PaletteResponse](t, rec)
	if p.Base != "#6366f1" || len(p.Colors) < 2 || !strings.Contains(p.CSS, "--") {
		t.Errorf("unexpected palette %+v", p)
	}

	rec = do(t, h, http.MethodPost, "/v1/color/palette", `{"base":"#6366f1","scheme":"plaid"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown scheme status = %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/v1/color/shades", `{"color":"#6366f1"}`)
	shades := decode[ShadesResponse](t, rec)
	if shades.Lighter != "#6d70fb" || shades.Darker != "#595ce7" {
		t.Errorf("unexpected shades %+v", shades)
	}
}

func TestColorNamedAndRandom(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodGet, "/v1/color/named?q=slate", "")
	named := decode[NamedResponse](t, rec)
	if named.Count == 0 || named.Count != len(named.Colors) {
		t.Errorf("unexpected search result %+v", named)
	}

	rec = do(t, h, http.MethodGet, "/v1/color/named?nearest=%23fe0000", "")
	if m := decode[colormath.NearestMatch](t, rec); m.Name != "Red" || m.Exact {
		t.Errorf("nearest = %+v", m)
	}

	a := do(t, h, http.MethodGet, "/v1/color/random?seed=42", "").Body.String()
	b := do(t, h, http.MethodGet, "/v1/color/random?seed=42", "").Body.String()
	if a != b {
		t.Errorf("seeded random differs: %s vs %s", a, b)
	}
	if rec := do(t, h, http.MethodGet, "/v1/color/random?seed=x", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad seed status = %d", rec.Code)
	}
}

func TestCSSTools(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		path string
		body string
		want string
	}{
		{"/v1/css/gradient", `{}`, "background: linear-gradient(90deg, #6366f1 0%, #ec4899 100%);"},
		{"/v1/css/box-shadow", `{"preset":"subtle"}`, "box-shadow: 5px 5px 10px 0px #0000001a;"},
		{"/v1/css/box-shadow", `{}`, "box-shadow: 5px 5px 10px 0px #0000001a;"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body)
			}
			if got := decode[CSSResponse](t, rec).CSS; got != tt.want {
				t.Errorf("css = %q, want %q", got, tt.want)
			}
		})
	}

	rec := do(t, h, http.MethodPost, "/v1/css/box-shadow", `{"preset":"enormous"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown preset status = %d", rec.Code)
	}
}

func TestCodeTools(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodPost, "/v1/code/json", `{"input":"{\"a\":1}","mode":"minify"}`)
	if resp := decode[CodeResponse](t, rec); resp.Output != `{"a":1}` || !resp.Valid {
		t.Errorf("minify = %+v", resp)
	}

	rec = do(t, h, http.MethodPost, "/v1/code/json", `{"input":"{\n  \"a\": 1,\n}","mode":"validate"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid JSON status = %d", rec.Code)
	}
	je := decode[JSONErrorResponse](t, rec)
	if je.Line != 3 || je.Column != 1 || je.ErrorName != "Invalid JSON" {
		t.Errorf("unexpected JSON error %+v", je)
	}

	rec = do(t, h, http.MethodPost, "/v1/code/base64", `{"input":"hello","mode":"encode"}`)
	if resp := decode[CodeResponse](t, rec); resp.Output != "aGVsbG8=" {
		t.Errorf("base64 = %q", resp.Output)
	}

	rec = do(t, h, http.MethodPost, "/v1/code/url", `{"input":"a b&c","mode":"encode"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("url encode status = %d: %s", rec.Code, rec.Body)
	}

	rec = do(t, h, http.MethodPost, "/v1/code/base64", `{"input":"x","mode":"rot13"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown mode status = %d", rec.Code)
	}
}

func TestRequestErrors(t *testing.T) {
	h := newTestServer(t).Handler()

	t.Run("method not allowed", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/v1/color/convert", "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("status = %d", rec.Code)
		}
		if allow := rec.Header().Get("Allow"); allow != "POST, OPTIONS" {
			t.Errorf("Allow = %q", allow)
		}
	})

	t.Run("head on get route", func(t *testing.T) {
		if rec := do(t, h, http.MethodHead, "/healthz", ""); rec.Code != http.StatusOK {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("unsupported media type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/color/convert", strings.NewReader("value=red"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnsupportedMediaType {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/color/convert", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("body too large", func(t *testing.T) {
		body := `{"input":"` + strings.Repeat("a", 2<<20) + `"}`
		if rec := do(t, h, http.MethodPost, "/v1/code/json", body); rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/v1/nope", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d", rec.Code)
		}
	})
}

func TestCORS(t *testing.T) {
	h := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/v1/color/convert", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign origin status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("localhost origin in development status = %d", rec.Code)
	}
}

func TestCleanOrigin(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://App.Example.com/path", "app.example.com"},
		{"http://localhost:3000", "localhost:3000"},
		{"example.com", "example.com"},
	}
	for _, tt := range tests {
		if got := cleanOrigin(tt.in); got != tt.want {
			t.Errorf("cleanOrigin(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRequestID(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "")
	if _, err := uuid.Parse(rec.Header().Get("X-Request-ID")); err != nil {
		t.Errorf("generated request ID is not a UUID: %q", rec.Header().Get("X-Request-ID"))
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != id {
		t.Errorf("request ID = %q, want %q", got, id)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "<script>")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got == "<script>" {
		t.Error("malformed request ID echoed back")
	}
}

func TestToolsCatalog(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	resp := decode[ToolsResponse](t, do(t, h, http.MethodGet, "/v1/tools", ""))
	if resp.Count != len(s.Routes()) {
		t.Errorf("count = %d, want %d", resp.Count, len(s.Routes()))
	}
	for _, cat := range []string{"service", "color", "css", "code", "image"} {
		if len(resp.Categories[cat]) == 0 {
			t.Errorf("category %s missing", cat)
		}
	}

	resp = decode[ToolsResponse](t, do(t, h, http.MethodGet, "/v1/tools?category=code", ""))
	if resp.Count != 3 || len(resp.Categories) != 1 {
		t.Errorf("filtered catalog = %+v", resp)
	}
}

func writeKeysFile(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := auth.KeysConfig{Clients: []auth.Client{
		{Name: "Alice", KeyHash: string(hash), RateLimitRPM: 60, Enabled: true},
	}}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "keys.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAuthAndUsage(t *testing.T) {
	store, err := auth.NewClientStore(writeKeysFile(t))
	if err != nil {
		t.Fatal(err)
	}
	tracker := usage.NewTracker("")
	defer tracker.Stop()

	s := NewServer(testConfig(), store, tracker)
	h := s.Handler()

	post := func(user, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/color/convert", strings.NewReader(`{"value":"red"}`))
		req.Header.Set("Content-Type", "application/json")
		if user != "" {
			req.SetBasicAuth(user, key)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := post("", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Error("missing WWW-Authenticate header")
	}
	if rec := post("alice", "wrong"); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad key status = %d", rec.Code)
	}
	if rec := post("alice", "secret"); rec.Code != http.StatusOK {
		t.Errorf("valid credentials status = %d: %s", rec.Code, rec.Body)
	}

	if rec := do(t, h, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("public route status = %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/usage", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("usage without credentials status = %d", rec.Code)
	}

	u := tracker.GetUsage("alice")
	if u.Requests != 1 || u.Tools["color.convert"] != 1 {
		t.Errorf("alice usage = %+v", u)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Env.AnonRateLimitRPM = 6 // burst of 10
	h := NewServer(cfg, nil, nil).Handler()

	for i := 0; i < 10; i++ {
		if rec := do(t, h, http.MethodGet, "/v1/color/random", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	rec := do(t, h, http.MethodGet, "/v1/color/random", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After")
	}
}

func TestConcurrencyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxConcurrent = 1
	s := NewServer(cfg, nil, nil)
	h := s.Handler()

	s.sem <- struct{}{}
	rec := do(t, h, http.MethodGet, "/v1/color/random", "")
	<-s.sem
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	img.Set(1, 2, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func upload(t *testing.T, h http.Handler, path string, img []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if img != nil {
		fw, err := mw.CreateFormFile("image", "test.png")
		if err != nil {
			t.Fatal(err)
		}
		fw.Write(img)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestImagePick(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := upload(t, h, "/v1/image/pick", testPNG(t), map[string]string{"x": "1", "y": "2", "history": "#00ff00, junk"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	resp := decode[PickResponse](t, rec)
	if resp.Color.Hex != "#ff0000" {
		t.Errorf("picked %s", resp.Color.Hex)
	}
	if len(resp.Swatches) != 2 || resp.Swatches[0] != "#ff0000" || resp.Swatches[1] != "#00ff00" {
		t.Errorf("swatches = %v", resp.Swatches)
	}

	if rec := upload(t, h, "/v1/image/pick", testPNG(t), map[string]string{"x": "9", "y": "0"}); rec.Code != http.StatusBadRequest {
		t.Errorf("out of bounds status = %d", rec.Code)
	}
	if rec := upload(t, h, "/v1/image/pick", nil, map[string]string{"x": "0"}); rec.Code != http.StatusBadRequest {
		t.Errorf("missing image status = %d", rec.Code)
	}
	if rec := upload(t, h, "/v1/image/pick", []byte("plain text, not pixels"), nil); rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("non-image status = %d", rec.Code)
	}
}

func TestImageCompress(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := upload(t, h, "/v1/image/compress", testPNG(t), map[string]string{"format": "png"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("X-Original-Size") == "" || rec.Header().Get("X-Compression-Ratio") == "" {
		t.Error("missing size headers")
	}
	if _, err := png.Decode(rec.Body); err != nil {
		t.Errorf("response is not a PNG: %v", err)
	}

	rec = upload(t, h, "/v1/image/compress", testPNG(t), map[string]string{"report": "true"})
	report := decode[CompressReport](t, rec)
	if report.Format != imaging.JPEG || report.Width != 4 || report.Data == "" {
		t.Errorf("unexpected report %+v", report.CompressResult)
	}

	if rec := upload(t, h, "/v1/image/compress", testPNG(t), map[string]string{"format": "webp"}); rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("webp status = %d", rec.Code)
	}
}

func TestImageBlindness(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := upload(t, h, "/v1/image/blindness", testPNG(t), map[string]string{"deficiency": "achromatopsia"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
	r, g, b, _ := img.At(1, 2).RGBA()
	if r != g || g != b {
		t.Errorf("achromatopsia pixel not gray: %d %d %d", r, g, b)
	}
}

func TestServeAndDrain(t *testing.T) {
	s := newTestServer(t)
	s.drainTimeout = time.Second

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	health := HealthResponse{}
	json.NewDecoder(resp.Body).Decode(&health)
	resp.Body.Close()
	if health.Status != "ok" || health.Environment != "development" {
		t.Errorf("health = %+v", health)
	}
	if s.Addr() == nil {
		t.Error("Addr is nil while serving")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	do(t, h, http.MethodPost, "/v1/color/convert", `{"value":"#fff"}`)
	do(t, h, http.MethodPost, "/v1/color/convert", `{"value":"nope"}`)

	stats := decode[StatsResponse](t, do(t, h, http.MethodGet, "/api/stats", ""))
	if stats.TotalRequests != 2 {
		t.Errorf("total requests = %d, want 2", stats.TotalRequests)
	}
	if stats.SuccessRate != 50 {
		t.Errorf("success rate = %v, want 50", stats.SuccessRate)
	}

	if rec := do(t, h, http.MethodGet, "/api/history", ""); rec.Code != http.StatusOK {
		t.Errorf("history status = %d", rec.Code)
	}
}
