package codeutil

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrInvalidBase64 = errors.New("invalid base64")

// EncodeBase64 encodes input with padding, using the URL alphabet when
// urlSafe is set.
func EncodeBase64(input string, urlSafe bool) string {
	if urlSafe {
		return base64.URLEncoding.EncodeToString([]byte(input))
	}
	return base64.StdEncoding.EncodeToString([]byte(input))
}

// DecodeBase64 accepts standard or URL alphabets, padded or not. Embedded
// whitespace from wrapped output is ignored.
func DecodeBase64(input string) (string, error) {
	s := strings.Join(strings.Fields(input), "")
	if s == "" {
		return "", ErrEmptyInput
	}

	s = strings.TrimRight(s, "=")
	if strings.ContainsAny(s, "-_") {
		s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	}

	out, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: decoded bytes are not UTF-8 text", ErrInvalidBase64)
	}
	return string(out), nil
}
