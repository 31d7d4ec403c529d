package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"devtoolbox/internal/imaging"
)

// StatsTracker tracks service statistics for the /api/stats endpoint
type StatsTracker struct {
	startTime     time.Time
	totalRequests atomic.Int64
	totalErrors   atomic.Int64
	totalBytes    atomic.Int64
	totalLatency  atomic.Int64 // microseconds

	// Rolling window for throughput (bytes per second, last minute)
	bytesWindow   []int64
	bytesWindowMu sync.Mutex

	// Hourly samples for the last day
	history   []HistorySample
	historyMu sync.RWMutex
}

// HistorySample represents a single data point for historical charts
type HistorySample struct {
	Time     string `json:"time"`
	Requests int64  `json:"requests"`
	Traffic  int64  `json:"traffic"`
}

// StatsResponse is the JSON response for /api/stats
type StatsResponse struct {
	TotalRequests  int64   `json:"totalRequests"`
	ActiveRequests int     `json:"activeRequests"`
	UptimeSeconds  int64   `json:"uptimeSeconds"`
	DataThroughput string  `json:"dataThroughput"`
	LatencyMs      float64 `json:"latencyMs"`
	SuccessRate    float64 `json:"successRate"`
}

// NewStatsTracker creates a tracker starting now.
func NewStatsTracker() *StatsTracker {
	return &StatsTracker{
		startTime:   time.Now(),
		bytesWindow: make([]int64, 0, 60),
		history:     make([]HistorySample, 0, 24),
	}
}

// Run updates the rolling window every second and the history every hour
// until ctx is cancelled.
func (s *StatsTracker) Run(ctx context.Context) {
	secondTicker := time.NewTicker(1 * time.Second)
	hourTicker := time.NewTicker(1 * time.Hour)
	defer secondTicker.Stop()
	defer hourTicker.Stop()

	var lastBytes int64

	for {
		select {
		case <-ctx.Done():
			return
		case <-secondTicker.C:
			current := s.totalBytes.Load()
			s.pushSecond(current - lastBytes)
			lastBytes = current
		case now := <-hourTicker.C:
			s.pushHour(now)
		}
	}
}

func (s *StatsTracker) pushSecond(n int64) {
	s.bytesWindowMu.Lock()
	defer s.bytesWindowMu.Unlock()
	s.bytesWindow = append(s.bytesWindow, n)
	if len(s.bytesWindow) > 60 {
		s.bytesWindow = s.bytesWindow[1:]
	}
}

func (s *StatsTracker) pushHour(now time.Time) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	s.history = append(s.history, HistorySample{
		Time:     now.Format("15:04"),
		Requests: s.totalRequests.Load(),
		Traffic:  s.totalBytes.Load(),
	})
	if len(s.history) > 24 {
		s.history = s.history[1:]
	}
}

// RecordRequest records a finished request
func (s *StatsTracker) RecordRequest(bytes int64, latency time.Duration, failed bool) {
	s.totalRequests.Add(1)
	s.totalBytes.Add(bytes)
	s.totalLatency.Add(latency.Microseconds())
	if failed {
		s.totalErrors.Add(1)
	}
}

// GetThroughput calculates average bytes per second over the last minute
func (s *StatsTracker) GetThroughput() string {
	s.bytesWindowMu.Lock()
	defer s.bytesWindowMu.Unlock()

	if len(s.bytesWindow) == 0 {
		return "0 Bytes/s"
	}

	var total int64
	for _, b := range s.bytesWindow {
		total += b
	}
	return imaging.FormatBytes(total/int64(len(s.bytesWindow)), 1) + "/s"
}

// GetSuccessRate is the share of requests that did not fail, in percent
func (s *StatsTracker) GetSuccessRate() float64 {
	total := s.totalRequests.Load()
	if total == 0 {
		return 100.0
	}
	return float64(total-s.totalErrors.Load()) / float64(total) * 100.0
}

// GetLatency is the mean request latency in milliseconds
func (s *StatsTracker) GetLatency() float64 {
	total := s.totalRequests.Load()
	if total == 0 {
		return 0
	}
	return float64(s.totalLatency.Load()) / float64(total) / 1000
}

// GetStats returns the current stats for the API
func (s *StatsTracker) GetStats() StatsResponse {
	return StatsResponse{
		TotalRequests:  s.totalRequests.Load(),
		ActiveRequests: ActiveRequests(),
		UptimeSeconds:  int64(time.Since(s.startTime).Seconds()),
		DataThroughput: s.GetThroughput(),
		LatencyMs:      s.GetLatency(),
		SuccessRate:    s.GetSuccessRate(),
	}
}

// GetHistory returns a copy of the hourly samples
func (s *StatsTracker) GetHistory() []HistorySample {
	s.historyMu.RLock()
	defer s.historyMu.RUnlock()

	result := make([]HistorySample, len(s.history))
	copy(result, s.history)
	return result
}

// StatsHandler handles /api/stats requests
func (s *StatsTracker) StatsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.GetStats())
}

// HistoryHandler handles /api/history requests
func (s *StatsTracker) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.GetHistory())
}
