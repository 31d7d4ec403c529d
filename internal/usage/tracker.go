package usage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"devtoolbox/internal/ui"
)

// Anonymous is the client name recorded for unauthenticated requests.
const Anonymous = "anonymous"

// ClientUsage tracks request counts and traffic for a single client
type ClientUsage struct {
	Requests       int64            `json:"requests"`
	Errors         int64            `json:"errors"`
	BytesIn        int64            `json:"bytes_in"`
	BytesOut       int64            `json:"bytes_out"`
	Tools          map[string]int64 `json:"tools"`
	LastRequestAt  string           `json:"last_request_at,omitempty"`
	LastResetAt    string           `json:"last_reset_at"`
	ActiveRequests int              `json:"active_requests"`
}

// UsageFile is the on-disk format for usage.json
type UsageFile struct {
	Month   string                  `json:"month"` // "2026-02"
	Clients map[string]*ClientUsage `json:"clients"`
}

// Tracker counts per-client usage within the current month and persists
// it so it survives restarts.
type Tracker struct {
	mu       sync.Mutex
	clients  map[string]*ClientUsage
	month    string // current month "YYYY-MM"
	filePath string
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewTracker creates a tracker that persists to filePath every five
// minutes. An empty path keeps usage in memory only.
func NewTracker(filePath string) *Tracker {
	t := newTracker(filePath, time.Now)
	t.loadFromDisk()
	go t.backgroundLoop(5 * time.Minute)
	return t
}

func newTracker(filePath string, now func() time.Time) *Tracker {
	return &Tracker{
		clients:  make(map[string]*ClientUsage),
		month:    now().Format("2006-01"),
		filePath: filePath,
		now:      now,
		stopCh:   make(chan struct{}),
	}
}

// Begin marks a request as in flight for client.
func (t *Tracker) Begin(client string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkMonthlyReset()
	t.getOrCreate(client).ActiveRequests++
}

// End records a finished request started with Begin.
func (t *Tracker) End(client, tool string, bytesIn, bytesOut int64, failed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.checkMonthlyReset()

	u := t.getOrCreate(client)
	if u.ActiveRequests > 0 {
		u.ActiveRequests--
	}
	u.Requests++
	if failed {
		u.Errors++
	}
	u.BytesIn += bytesIn
	u.BytesOut += bytesOut
	if tool != "" {
		u.Tools[tool]++
	}
	u.LastRequestAt = t.now().Format(time.RFC3339)
}

// GetUsage returns a copy of the usage for one client.
func (t *Tracker) GetUsage(client string) ClientUsage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.getOrCreate(client).clone()
}

// GetAllUsage returns a copy of all client usage data.
func (t *Tracker) GetAllUsage() map[string]ClientUsage {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make(map[string]ClientUsage, len(t.clients))
	for k, v := range t.clients {
		result[k] = v.clone()
	}
	return result
}

// GetMonth returns the current tracking month (e.g. "2026-02").
func (t *Tracker) GetMonth() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.month
}

// Stop ends the background loop and saves one last time.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopCh)
		t.saveToDisk()
	})
}

func (u *ClientUsage) clone() ClientUsage {
	c := *u
	c.Tools = make(map[string]int64, len(u.Tools))
	for k, v := range u.Tools {
		c.Tools[k] = v
	}
	return c
}

func (t *Tracker) getOrCreate(client string) *ClientUsage {
	if client == "" {
		client = Anonymous
	}
	u, ok := t.clients[client]
	if !ok {
		u = &ClientUsage{
			Tools:       make(map[string]int64),
			LastResetAt: t.now().Format(time.RFC3339),
		}
		t.clients[client] = u
	}
	return u
}

func (t *Tracker) checkMonthlyReset() {
	currentMonth := t.now().Format("2006-01")
	if currentMonth == t.month {
		return
	}
	ui.LogStatus("info", fmt.Sprintf("Monthly usage reset: %s → %s", t.month, currentMonth))
	for _, u := range t.clients {
		u.Requests = 0
		u.Errors = 0
		u.BytesIn = 0
		u.BytesOut = 0
		u.Tools = make(map[string]int64)
		u.LastResetAt = t.now().Format(time.RFC3339)
	}
	t.month = currentMonth
	t.saveToDiskLocked()
}

func (t *Tracker) backgroundLoop(every time.Duration) {
	saveTicker := time.NewTicker(every)
	defer saveTicker.Stop()

	for {
		select {
		case <-saveTicker.C:
			t.saveToDisk()
		case <-t.stopCh:
			return
		}
	}
}

func (t *Tracker) saveToDisk() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.saveToDiskLocked()
}

func (t *Tracker) saveToDiskLocked() {
	if t.filePath == "" {
		return
	}
	file := UsageFile{
		Month:   t.month,
		Clients: t.clients,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		ui.LogStatus("error", "Failed to marshal usage: "+err.Error())
		return
	}
	if err := os.WriteFile(t.filePath, data, 0o644); err != nil {
		ui.LogStatus("error", "Failed to save usage: "+err.Error())
	}
}

func (t *Tracker) loadFromDisk() {
	if t.filePath == "" {
		return
	}
	data, err := os.ReadFile(t.filePath)
	if err != nil {
		// Missing on first run
		return
	}

	var file UsageFile
	if err := json.Unmarshal(data, &file); err != nil {
		ui.LogStatus("warning", "Failed to parse usage file, starting fresh: "+err.Error())
		return
	}

	currentMonth := t.now().Format("2006-01")
	if file.Month != currentMonth || file.Clients == nil {
		ui.LogStatus("info", fmt.Sprintf("Usage data from %s discarded (current month: %s)", file.Month, currentMonth))
		return
	}

	for _, u := range file.Clients {
		// In-flight requests don't survive restarts
		u.ActiveRequests = 0
		if u.Tools == nil {
			u.Tools = make(map[string]int64)
		}
	}
	t.clients = file.Clients
	t.month = file.Month
	ui.LogStatus("info", fmt.Sprintf("Restored usage for %d clients (month: %s)", len(t.clients), t.month))
}
