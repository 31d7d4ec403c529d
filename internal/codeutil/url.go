package codeutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrInvalidEscape = errors.New("invalid percent-encoding")
	ErrURLMode       = errors.New("unknown url mode")
)

// URLMode selects which characters are escaped.
type URLMode string

const (
	// ComponentMode escapes a query component; spaces become "%20".
	ComponentMode URLMode = "component"
	// PathMode escapes a single path segment.
	PathMode URLMode = "path"
)

// ParseURLMode maps an empty string to ComponentMode.
func ParseURLMode(s string) (URLMode, error) {
	switch URLMode(strings.ToLower(strings.TrimSpace(s))) {
	case ComponentMode, "":
		return ComponentMode, nil
	case PathMode:
		return PathMode, nil
	}
	return "", fmt.Errorf("%w: %q", ErrURLMode, s)
}

// EncodeURL percent-encodes input for mode.
func EncodeURL(input string, mode URLMode) (string, error) {
	mode, err := ParseURLMode(string(mode))
	if err != nil {
		return "", err
	}
	if mode == PathMode {
		return url.PathEscape(input), nil
	}
	// QueryEscape already turned literal '+' into %2B, so any '+' left
	// stands for a space.
	return strings.ReplaceAll(url.QueryEscape(input), "+", "%20"), nil
}

// DecodeURL reverses EncodeURL. In ComponentMode a '+' also decodes to a
// space, matching form encoding.
func DecodeURL(input string, mode URLMode) (string, error) {
	mode, err := ParseURLMode(string(mode))
	if err != nil {
		return "", err
	}
	var out string
	if mode == PathMode {
		out, err = url.PathUnescape(input)
	} else {
		out, err = url.QueryUnescape(input)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEscape, err)
	}
	return out, nil
}
