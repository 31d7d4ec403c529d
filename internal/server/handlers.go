package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"devtoolbox/internal/usage"
)

var errEmptyBody = errors.New("request body is empty")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// readJSONBody returns the raw body after checking the content type.
func readJSONBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		media, _, err := mime.ParseMediaType(ct)
		if err != nil || (media != "application/json" && !strings.HasSuffix(media, "+json")) {
			unsupportedMediaType(w, r, ct)
			return nil, false
		}
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		badJSONRequest(w, r, err)
		return nil, false
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		badJSONRequest(w, r, errEmptyBody)
		return nil, false
	}
	return data, true
}

// decodeJSON decodes the body over v, so fields left out of the request
// keep whatever v already holds.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	data, ok := readJSONBody(w, r)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		badJSONRequest(w, r, err)
		return false
	}
	return true
}

// HealthResponse is the JSON response for /healthz
type HealthResponse struct {
	Status        string `json:"status"`
	Environment   string `json:"environment"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Tools         int    `json:"tools"`
	Auth          bool   `json:"auth"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:        "ok",
		Environment:   s.Config.Env.Env.String(),
		UptimeSeconds: int64(time.Since(s.stats.startTime).Seconds()),
		Tools:         len(s.routes),
		Auth:          s.clients != nil,
	})
}

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	if s.usage == nil {
		writeJSON(w, http.StatusOK, usage.UsageResponse{Clients: map[string]usage.UsageEntry{}})
		return
	}
	usage.UsageHandler(s.usage)(w, r)
}
