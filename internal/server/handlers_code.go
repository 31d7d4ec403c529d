package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"devtoolbox/internal/codeutil"
)

// CodeRequest is shared by the text tools. Mode selects the operation.
type CodeRequest struct {
	Input   string `json:"input"`
	Mode    string `json:"mode"`
	Indent  int    `json:"indent"`
	URLSafe bool   `json:"url_safe"`
	Scope   string `json:"scope"`
}

// CodeResponse is the transformed text.
type CodeResponse struct {
	Mode   string `json:"mode"`
	Output string `json:"output"`
	Valid  bool   `json:"valid"`
}

func errMode(allowed ...string) error {
	return fmt.Errorf("mode must be one of %s", strings.Join(allowed, ", "))
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	req := CodeRequest{Mode: "format", Indent: codeutil.DefaultIndent}
	if !decodeJSON(w, r, &req) {
		return
	}

	var out string
	var err error
	mode := strings.ToLower(req.Mode)
	switch mode {
	case "format":
		out, err = codeutil.FormatJSON(req.Input, req.Indent)
	case "minify":
		out, err = codeutil.MinifyJSON(req.Input)
	case "validate":
		err = codeutil.ValidateJSON(req.Input)
	default:
		badRequest(w, r, errMode("format", "minify", "validate"))
		return
	}

	var syn *codeutil.SyntaxError
	if errors.As(err, &syn) {
		invalidJSONInput(w, r, syn)
		return
	}
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CodeResponse{Mode: mode, Output: out, Valid: true})
}

func (s *Server) handleBase64(w http.ResponseWriter, r *http.Request) {
	req := CodeRequest{Mode: "encode"}
	if !decodeJSON(w, r, &req) {
		return
	}

	var out string
	var err error
	mode := strings.ToLower(req.Mode)
	switch mode {
	case "encode":
		out = codeutil.EncodeBase64(req.Input, req.URLSafe)
	case "decode":
		out, err = codeutil.DecodeBase64(req.Input)
	default:
		badRequest(w, r, errMode("encode", "decode"))
		return
	}
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CodeResponse{Mode: mode, Output: out, Valid: true})
}

func (s *Server) handleURL(w http.ResponseWriter, r *http.Request) {
	req := CodeRequest{Mode: "encode"}
	if !decodeJSON(w, r, &req) {
		return
	}
	scope, err := codeutil.ParseURLMode(req.Scope)
	if err != nil {
		toolError(w, r, err)
		return
	}

	var out string
	mode := strings.ToLower(req.Mode)
	switch mode {
	case "encode":
		out, err = codeutil.EncodeURL(req.Input, scope)
	case "decode":
		out, err = codeutil.DecodeURL(req.Input, scope)
	default:
		badRequest(w, r, errMode("encode", "decode"))
		return
	}
	if err != nil {
		toolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CodeResponse{Mode: mode, Output: out, Valid: true})
}
