package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"devtoolbox/internal/ui"
	"devtoolbox/internal/usage"
)

type ctxKey int

const infoKey ctxKey = iota

// requestInfo is shared by the middleware chain for one request. Inner
// layers fill in what outer layers report on.
type requestInfo struct {
	id     string
	tool   string
	client string
	rec    *statusRecorder
	body   *countingReader
}

func infoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(infoKey).(*requestInfo)
	return info
}

// RequestID returns the request ID assigned by the server, if any.
func RequestID(ctx context.Context) string {
	if info := infoFrom(ctx); info != nil {
		return info.id
	}
	return ""
}

// ClientName returns the authenticated client for the request, or
// usage.Anonymous.
func ClientName(ctx context.Context) string {
	if info := infoFrom(ctx); info != nil && info.client != "" {
		return info.client
	}
	return usage.Anonymous
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

func (r *statusRecorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

type countingReader struct {
	io.ReadCloser
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.ReadCloser.Read(p)
	c.n += int64(n)
	return n, err
}

// withRequestID assigns every request an ID, reusing a well-formed
// incoming X-Request-ID.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		info := &requestInfo{id: id, tool: s.toolFor(r.URL.Path)}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), infoKey, info)))
	})
}

func cleanOrigin(origin string) string {
	cleaned := strings.TrimPrefix(origin, "https://")
	cleaned = strings.TrimPrefix(cleaned, "http://")
	if idx := strings.Index(cleaned, "/"); idx != -1 {
		cleaned = cleaned[:idx]
	}
	return strings.ToLower(cleaned)
}

var localhostPattern = regexp.MustCompile(`^(localhost|127\.0\.0\.1)(:\d+)?$`)

func isAllowedOrigin(origin string, allowedOrigins []string, dev bool) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if dev && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if allowed == "*" || cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}
	return false
}

// withCORS answers preflight requests and rejects browsers calling from
// origins that are not allowed.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if !isAllowedOrigin(origin, s.Config.Env.AllowedOrigins, s.Config.Env.IsDevelopment()) {
				forbidden(w, r, errOrigin(origin))
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, Content-Length, X-Request-ID")
			w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Original-Size, X-Compressed-Size, X-Compression-Ratio")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func errOrigin(origin string) error {
	return &originError{origin: cleanOrigin(origin)}
}

type originError struct{ origin string }

func (e *originError) Error() string { return ErrOriginNotAllowed.Error() + ": " + e.origin }
func (e *originError) Unwrap() error { return ErrOriginNotAllowed }

// withMetrics records prometheus metrics, service stats and the debug
// request log.
func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := infoFrom(r.Context())
		start := time.Now()

		requestStarted()
		defer requestFinished()

		rec := &statusRecorder{ResponseWriter: w}
		info.rec = rec
		if r.Body != nil {
			info.body = &countingReader{ReadCloser: r.Body}
			r.Body = info.body
		}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		status := rec.Status()
		MetricRequestsTotal.WithLabelValues(info.tool, strconv.Itoa(status)).Inc()
		MetricRequestDuration.WithLabelValues(info.tool).Observe(elapsed.Seconds())
		s.stats.RecordRequest(info.bytesIn()+rec.bytes, elapsed, status >= 400)

		if s.debug {
			ui.LogRequest(r.Method, r.URL.Path, status, elapsed, ClientName(r.Context()))
		}
	})
}

func (info *requestInfo) bytesIn() int64 {
	if info.body == nil {
		return 0
	}
	return info.body.n
}

// withAuth identifies the client. When authentication is disabled every
// caller is anonymous. Public routes accept anonymous callers but still
// honour valid credentials.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.clients == nil {
			next.ServeHTTP(w, r)
			return
		}

		if !s.clients.CheckIPAllowed(r.RemoteAddr) {
			forbidden(w, r, ErrIPNotAllowed)
			return
		}

		name, key, ok := r.BasicAuth()
		if !ok {
			if s.isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			invalidCredentials(w, r, ErrMissingCredentials)
			return
		}

		client, valid := s.clients.Authenticate(name, key)
		if !valid {
			invalidCredentials(w, r, ErrBadCredentials)
			return
		}
		infoFrom(r.Context()).client = strings.ToLower(client.Name)
		next.ServeHTTP(w, r)
	})
}

// withUsage counts the request against its client.
func (s *Server) withUsage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.usage == nil {
			next.ServeHTTP(w, r)
			return
		}
		info := infoFrom(r.Context())
		client := ClientName(r.Context())

		s.usage.Begin(client)
		next.ServeHTTP(w, r)
		s.usage.End(client, info.tool, info.bytesIn(), info.rec.bytes, info.rec.Status() >= 400)
	})
}

// withRateLimit applies the client's token bucket, or the per-IP bucket
// for anonymous callers.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := infoFrom(r.Context())
		var allowed bool
		if info.client != "" && s.clients != nil {
			allowed = s.clients.CheckRateLimit(info.client)
		} else {
			allowed = s.anon.AllowRate(clientIP(r), s.Config.Env.AnonRateLimitRPM)
		}
		if !allowed {
			tooManyRequests(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLimits caps concurrent requests, request body size and how long a
// tool may run.
func (s *Server) withLimits(next http.Handler) http.Handler {
	timeout := time.Duration(s.Config.TimeoutSec) * time.Second
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case s.sem <- struct{}{}:
			defer func() { <-s.sem }()
		default:
			serviceUnavailable(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		r = r.WithContext(ctx)

		limit := int64(maxJSONBody)
		if strings.HasPrefix(r.URL.Path, "/v1/image/") {
			// Room for the multipart envelope and form fields.
			limit = s.Config.MaxUploadBytes() + 1<<20
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}

const maxJSONBody = 1 << 20

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
