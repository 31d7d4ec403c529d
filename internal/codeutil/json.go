// Package codeutil implements the text formatting tools: JSON pretty
// printing and minification, Base64 and URL encoding.
package codeutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput  = errors.New("empty input")
	ErrInvalidJSON = errors.New("invalid JSON")
)

const (
	MinIndent     = 1
	MaxIndent     = 8
	DefaultIndent = 2
)

// SyntaxError locates a JSON syntax error in the input.
type SyntaxError struct {
	Msg    string `json:"message"`
	Offset int64  `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidJSON }

// FormatJSON re-indents input with indent spaces per level. Object key
// order is preserved.
func FormatJSON(input string, indent int) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}
	indent = min(max(indent, MinIndent), MaxIndent)

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(input), "", strings.Repeat(" ", indent)); err != nil {
		return "", locate(input, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// MinifyJSON strips insignificant whitespace.
func MinifyJSON(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(input)); err != nil {
		return "", locate(input, err)
	}
	return buf.String(), nil
}

// ValidateJSON returns nil for well-formed input and a *SyntaxError
// otherwise.
func ValidateJSON(input string) error {
	_, err := MinifyJSON(input)
	return err
}

// locate converts a json error into a *SyntaxError with a 1-based line
// and column.
func locate(input string, err error) error {
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	idx := int(se.Offset) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(input) {
		idx = len(input)
	}
	head := input[:idx]
	return &SyntaxError{
		Msg:    se.Error(),
		Offset: se.Offset,
		Line:   strings.Count(head, "\n") + 1,
		Column: idx - strings.LastIndexByte(head, '\n'),
	}
}
