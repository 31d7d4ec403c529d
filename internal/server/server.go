// Package server exposes the color, CSS, code and image tools over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"devtoolbox/internal/auth"
	"devtoolbox/internal/config"
	"devtoolbox/internal/ui"
	"devtoolbox/internal/usage"
)

// Server serves the tool API.
type Server struct {
	Config *config.Config

	clients *auth.ClientStore // nil when authentication is disabled
	usage   *usage.Tracker
	anon    *auth.RateLimiter
	stats   *StatsTracker

	routes []Route
	byPath map[string]Route
	sem    chan struct{} // Semaphore for request limiting
	debug  bool

	drainTimeout time.Duration

	mu sync.Mutex
	ln net.Listener
}

// NewServer creates a server. clients may be nil to serve everyone
// anonymously; tracker may be nil to skip usage accounting.
func NewServer(cfg *config.Config, clients *auth.ClientStore, tracker *usage.Tracker) *Server {
	s := &Server{
		Config:       cfg,
		clients:      clients,
		usage:        tracker,
		anon:         auth.NewRateLimiter(),
		stats:        NewStatsTracker(),
		sem:          make(chan struct{}, cfg.MaxConcurrent),
		debug:        cfg.Env.DebugLogging(),
		drainTimeout: 30 * time.Second,
	}
	s.routes = s.buildRoutes()
	s.byPath = make(map[string]Route, len(s.routes))
	for _, rt := range s.routes {
		s.byPath[rt.Path] = rt
	}
	return s
}

// Stats exposes the service statistics.
func (s *Server) Stats() *StatsTracker {
	return s.stats
}

// Handler returns the full middleware chain around the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, rt := range s.routes {
		mux.Handle(rt.Path, s.methodGuard(rt))
	}
	mux.HandleFunc("/", notFound)

	var h http.Handler = mux
	h = s.withLimits(h)
	h = s.withRateLimit(h)
	h = s.withUsage(h)
	h = s.withAuth(h)
	h = s.withMetrics(h)
	h = s.withCORS(h)
	h = s.withRequestID(h)
	return h
}

func (s *Server) methodGuard(rt Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != rt.Method && !(rt.Method == http.MethodGet && r.Method == http.MethodHead) {
			requireMethod(w, r, rt.Method)
			return
		}
		rt.handler(w, r)
	})
}

// Addr is the address the server is listening on, once started.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Start listens on Config.Listen and serves until ctx is cancelled, then
// drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Config.Listen)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	timeout := time.Duration(s.Config.TimeoutSec) * time.Second
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	addr := ln.Addr().String()
	ui.LogStatus("success", "Listening on http://"+displayAddr(addr))
	ui.LogStatus("info", "Stats API: http://"+displayAddr(addr)+"/api/stats")

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	go s.stats.Run(bgCtx)
	go s.pruneLoop(bgCtx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		ui.LogStatus("warning", "Shutdown signal received...")
		return s.drain(srv)
	}
}

// drain waits for in-flight requests to finish (with timeout).
func (s *Server) drain(srv *http.Server) error {
	if n := ActiveRequests(); n > 0 {
		ui.LogStatus("info", "Draining "+strconv.Itoa(n)+" active requests ("+s.drainTimeout.String()+" timeout)...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		ui.LogStatus("warning", "Drain timeout reached. Forcing shutdown.")
		return srv.Close()
	}
	ui.LogStatus("success", "All requests drained. Goodbye.")
	return nil
}

// pruneLoop forgets idle anonymous rate-limit buckets.
func (s *Server) pruneLoop(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.anon.Prune(10 * time.Minute)
		}
	}
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	if strings.HasPrefix(addr, "[::]:") {
		return "localhost" + strings.TrimPrefix(addr, "[::]")
	}
	return addr
}
