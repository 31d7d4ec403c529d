package usage

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestTrackerCounts(t *testing.T) {
	clock := &fakeClock{time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	tr := newTracker("", clock.now)

	tr.Begin("alice")
	if got := tr.GetUsage("alice").ActiveRequests; got != 1 {
		t.Errorf("active = %d", got)
	}
	tr.End("alice", "color.convert", 100, 200, false)
	tr.Begin("alice")
	tr.End("alice", "color.convert", 10, 20, true)
	tr.Begin("")
	tr.End("", "code.json", 1, 2, false)

	a := tr.GetUsage("alice")
	if a.Requests != 2 || a.Errors != 1 || a.BytesIn != 110 || a.BytesOut != 220 || a.ActiveRequests != 0 {
		t.Errorf("alice usage = %+v", a)
	}
	if a.Tools["color.convert"] != 2 {
		t.Errorf("tools = %v", a.Tools)
	}

	all := tr.GetAllUsage()
	if _, ok := all[Anonymous]; !ok {
		t.Errorf("anonymous usage missing: %v", all)
	}

	// Copies must not alias the tracker's state.
	a.Tools["color.convert"] = 99
	if tr.GetUsage("alice").Tools["color.convert"] != 2 {
		t.Error("GetUsage returned shared map")
	}
}

func TestTrackerMonthlyReset(t *testing.T) {
	clock := &fakeClock{time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)}
	path := filepath.Join(t.TempDir(), "usage.json")
	tr := newTracker(path, clock.now)

	tr.Begin("bob")
	tr.End("bob", "css.gradient", 5, 5, false)

	clock.t = clock.t.Add(2 * time.Minute)
	tr.Begin("bob")
	tr.End("bob", "css.grid", 1, 1, false)

	if tr.GetMonth() != "2026-04" {
		t.Errorf("month = %s", tr.GetMonth())
	}
	u := tr.GetUsage("bob")
	if u.Requests != 1 || u.Tools["css.gradient"] != 0 || u.Tools["css.grid"] != 1 {
		t.Errorf("usage after reset = %+v", u)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("reset should save: %v", err)
	}
}

func TestTrackerPersistence(t *testing.T) {
	clock := &fakeClock{time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)}
	path := filepath.Join(t.TempDir(), "usage.json")

	tr := newTracker(path, clock.now)
	tr.Begin("carol")
	tr.End("carol", "image.compress", 4096, 1024, false)
	tr.Begin("carol") // left in flight
	tr.Stop()
	tr.Stop() // idempotent

	restored := newTracker(path, clock.now)
	restored.loadFromDisk()
	u := restored.GetUsage("carol")
	if u.Requests != 1 || u.BytesIn != 4096 || u.ActiveRequests != 0 {
		t.Errorf("restored usage = %+v", u)
	}

	clock.t = clock.t.AddDate(0, 1, 0)
	next := newTracker(path, clock.now)
	next.loadFromDisk()
	if len(next.GetAllUsage()) != 0 {
		t.Error("usage from a previous month was restored")
	}
}

func TestUsageHandler(t *testing.T) {
	clock := &fakeClock{time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}
	tr := newTracker("", clock.now)
	tr.Begin("dave")
	tr.End("dave", "color.contrast", 10, 10, false)
	tr.Begin("dave")
	tr.End("dave", "color.contrast", 10, 10, true)

	rec := httptest.NewRecorder()
	UsageHandler(tr)(rec, httptest.NewRequest(http.MethodGet, "/api/usage", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp UsageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Month != "2026-06" {
		t.Errorf("month = %s", resp.Month)
	}
	d := resp.Clients["dave"]
	if d.Requests != 2 || d.ErrorRate != 50 || d.Tools["color.contrast"] != 2 {
		t.Errorf("dave = %+v", d)
	}

	rec = httptest.NewRecorder()
	UsageHandler(tr)(rec, httptest.NewRequest(http.MethodOptions, "/api/usage", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Errorf("OPTIONS: %d %q", rec.Code, rec.Body.String())
	}
}
