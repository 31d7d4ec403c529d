package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"

	"devtoolbox/internal/codeutil"
	"devtoolbox/internal/imaging"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

// HandlerError is the JSON body of every error response.
type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
}

var (
	ErrMissingCredentials = errors.New("client credentials required")
	ErrBadCredentials     = errors.New("invalid client name or key")
	ErrIPNotAllowed       = errors.New("client address not allowed")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrAtCapacity         = errors.New("server is at capacity")
	ErrOriginNotAllowed   = errors.New("origin not allowed")
)

func writeError(w http.ResponseWriter, status int, he HandlerError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(he)
}

func requireMethod(w http.ResponseWriter, r *http.Request, allowed string) {
	MetricErrorsTotal.WithLabelValues("method").Inc()
	w.Header().Set("Allow", allowed+", "+http.MethodOptions)
	writeError(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        allowed + " Method Required",
		Description:      allowed + " method required for this endpoint, you used: " + r.Method,
		PossibleSolution: "Use " + allowed + " method",
		CallerInfo:       getCallerInfo(),
	})
}

func badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	MetricErrorsTotal.WithLabelValues("json").Inc()
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		writeError(w, http.StatusRequestEntityTooLarge, HandlerError{
			ErrorName:        "Request Body Too Large",
			Description:      fmt.Sprintf("request body exceeds %d bytes", tooBig.Limit),
			PossibleSolution: "Send a smaller request body",
			CallerInfo:       getCallerInfo(),
		})
		return
	}
	writeError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

// JSONErrorResponse reports where a JSON document stops being valid.
type JSONErrorResponse struct {
	HandlerError
	Line   int   `json:"line"`
	Column int   `json:"column"`
	Offset int64 `json:"offset"`
}

// invalidJSONInput is for JSON the user asked a tool to process, as
// opposed to a malformed request body.
func invalidJSONInput(w http.ResponseWriter, r *http.Request, syn *codeutil.SyntaxError) {
	MetricErrorsTotal.WithLabelValues("input").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(JSONErrorResponse{
		HandlerError: HandlerError{
			ErrorName:        "Invalid JSON",
			Description:      syn.Error(),
			PossibleSolution: "Double check your JSON formatting",
			CallerInfo:       getCallerInfo(),
		},
		Line:   syn.Line,
		Column: syn.Column,
		Offset: syn.Offset,
	})
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	MetricErrorsTotal.WithLabelValues("input").Inc()
	writeError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}

func unsupportedMediaType(w http.ResponseWriter, r *http.Request, contentType string) {
	MetricErrorsTotal.WithLabelValues("media_type").Inc()
	writeError(w, http.StatusUnsupportedMediaType, HandlerError{
		ErrorName:        "Unsupported Media Type",
		Description:      "unsupported content type " + contentType,
		PossibleSolution: "Send application/json, or multipart/form-data for image tools",
		CallerInfo:       getCallerInfo(),
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	MetricErrorsTotal.WithLabelValues("not_found").Inc()
	writeError(w, http.StatusNotFound, HandlerError{
		ErrorName:        "Not Found",
		Description:      "no tool at " + r.URL.Path,
		PossibleSolution: "GET /v1/tools lists the available endpoints",
		CallerInfo:       getCallerInfo(),
	})
}

func invalidCredentials(w http.ResponseWriter, r *http.Request, err error) {
	MetricErrorsTotal.WithLabelValues("auth").Inc()
	w.Header().Set("WWW-Authenticate", `Basic realm="devtoolbox"`)
	writeError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authorizing Client",
		Description:      err.Error(),
		PossibleSolution: "Retry with proper credentials",
		CallerInfo:       getCallerInfo(),
	})
}

func forbidden(w http.ResponseWriter, r *http.Request, err error) {
	MetricErrorsTotal.WithLabelValues("forbidden").Inc()
	writeError(w, http.StatusForbidden, HandlerError{
		ErrorName:        "Forbidden",
		Description:      err.Error(),
		PossibleSolution: "Call from an allowed address or origin",
		CallerInfo:       getCallerInfo(),
	})
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	MetricErrorsTotal.WithLabelValues("rate_limit").Inc()
	MetricRateLimited.Inc()
	w.Header().Set("Retry-After", "1")
	writeError(w, http.StatusTooManyRequests, HandlerError{
		ErrorName:        "Too Many Requests",
		Description:      ErrRateLimited.Error(),
		PossibleSolution: "Slow down and retry shortly",
		CallerInfo:       getCallerInfo(),
	})
}

func serviceUnavailable(w http.ResponseWriter, r *http.Request) {
	MetricErrorsTotal.WithLabelValues("capacity").Inc()
	MetricRequestsRejected.Inc()
	w.Header().Set("Retry-After", "1")
	writeError(w, http.StatusServiceUnavailable, HandlerError{
		ErrorName:        "Service Unavailable",
		Description:      ErrAtCapacity.Error(),
		PossibleSolution: "Retry shortly",
		CallerInfo:       getCallerInfo(),
	})
}

func internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	MetricErrorsTotal.WithLabelValues("internal").Inc()
	writeError(w, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}

// toolError maps an error returned by a tool package to a response. Tool
// errors are input errors unless they say otherwise.
func toolError(w http.ResponseWriter, r *http.Request, err error) {
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig), errors.Is(err, imaging.ErrTooLarge), errors.Is(err, imaging.ErrTooManyPixels):
		MetricErrorsTotal.WithLabelValues("too_large").Inc()
		writeError(w, http.StatusRequestEntityTooLarge, HandlerError{
			ErrorName:        "Payload Too Large",
			Description:      err.Error(),
			PossibleSolution: "Upload a smaller image",
			CallerInfo:       getCallerInfo(),
		})
	case errors.Is(err, imaging.ErrNotImage), errors.Is(err, imaging.ErrUnsupportedFormat):
		MetricErrorsTotal.WithLabelValues("media_type").Inc()
		writeError(w, http.StatusUnsupportedMediaType, HandlerError{
			ErrorName:        "Unsupported Media Type",
			Description:      err.Error(),
			PossibleSolution: "Upload a JPEG, PNG, GIF, BMP, TIFF or WebP image",
			CallerInfo:       getCallerInfo(),
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		MetricErrorsTotal.WithLabelValues("timeout").Inc()
		writeError(w, http.StatusServiceUnavailable, HandlerError{
			ErrorName:        "Request Cancelled",
			Description:      err.Error(),
			PossibleSolution: "Retry with a smaller input",
			CallerInfo:       getCallerInfo(),
		})
	default:
		MetricErrorsTotal.WithLabelValues("input").Inc()
		writeError(w, http.StatusBadRequest, HandlerError{
			ErrorName:        "Invalid Input",
			Description:      err.Error(),
			PossibleSolution: solutionFor(err),
			CallerInfo:       getCallerInfo(),
		})
	}
}

func solutionFor(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "color"), strings.Contains(msg, "hex"):
		return "Use #rgb, #rrggbb, rgb(), hsl() or a CSS color name"
	case strings.Contains(msg, "json"):
		return "Double check your JSON formatting"
	default:
		return "Check your request parameters"
	}
}
