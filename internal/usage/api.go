package usage

import (
	"encoding/json"
	"net/http"
)

// UsageEntry is a single client's usage as served by the API
type UsageEntry struct {
	Requests       int64            `json:"requests"`
	Errors         int64            `json:"errors"`
	ErrorRate      float64          `json:"error_rate"`
	BytesIn        int64            `json:"bytes_in"`
	BytesOut       int64            `json:"bytes_out"`
	Tools          map[string]int64 `json:"tools"`
	LastRequestAt  string           `json:"last_request_at,omitempty"`
	ActiveRequests int              `json:"active_requests"`
}

// UsageResponse is the JSON response for /api/usage
type UsageResponse struct {
	Month   string                `json:"month"`
	Clients map[string]UsageEntry `json:"clients"`
}

// Snapshot builds the API view of the tracker.
func (t *Tracker) Snapshot() UsageResponse {
	all := t.GetAllUsage()
	resp := UsageResponse{
		Month:   t.GetMonth(),
		Clients: make(map[string]UsageEntry, len(all)),
	}

	for name, u := range all {
		var rate float64
		if u.Requests > 0 {
			rate = float64(u.Errors) / float64(u.Requests) * 100
		}
		resp.Clients[name] = UsageEntry{
			Requests:       u.Requests,
			Errors:         u.Errors,
			ErrorRate:      rate,
			BytesIn:        u.BytesIn,
			BytesOut:       u.BytesOut,
			Tools:          u.Tools,
			LastRequestAt:  u.LastRequestAt,
			ActiveRequests: u.ActiveRequests,
		}
	}
	return resp
}

// UsageHandler returns an http.HandlerFunc for the /api/usage endpoint.
// CORS headers are set by the caller's middleware.
func UsageHandler(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		json.NewEncoder(w).Encode(tracker.Snapshot())
	}
}
