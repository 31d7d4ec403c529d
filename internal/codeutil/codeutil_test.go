package codeutil

import (
	"errors"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	in := `{"b":1,"a":[1,2],"c":{}}`
	tests := []struct {
		indent int
		want   string
	}{
		{2, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ],\n  \"c\": {}\n}"},
		{0, "{\n \"b\": 1,\n \"a\": [\n  1,\n  2\n ],\n \"c\": {}\n}"},
	}
	for _, tt := range tests {
		got, err := FormatJSON(in, tt.indent)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("indent %d:\n%s\nwant\n%s", tt.indent, got, tt.want)
		}
	}
}

func TestMinifyJSON(t *testing.T) {
	got, err := MinifyJSON("{\n  \"z\": 1,\n  \"a\": [ true, null ]\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"z":1,"a":[true,null]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONSyntaxErrorPosition(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		line, col int
	}{
		{"trailing comma", "{\n  \"a\": 1,\n}", 3, 1},
		{"bad token", `{"a": tru}`, 1, 10},
		{"truncated", "[1, 2", 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(tt.in)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %v", err)
			}
			if !errors.Is(err, ErrInvalidJSON) {
				t.Error("SyntaxError should match ErrInvalidJSON")
			}
			if se.Line != tt.line || se.Column != tt.col {
				t.Errorf("position = %d:%d, want %d:%d (%s)", se.Line, se.Column, tt.line, tt.col, se.Msg)
			}
		})
	}

	if err := ValidateJSON(`{"ok": [1, 2, 3]}`); err != nil {
		t.Errorf("valid JSON rejected: %v", err)
	}
	if err := ValidateJSON("  "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestBase64(t *testing.T) {
	if got := EncodeBase64("hello?>", false); got != "aGVsbG8/Pg==" {
		t.Errorf("std = %s", got)
	}
	if got := EncodeBase64("hello?>", true); got != "aGVsbG8_Pg==" {
		t.Errorf("url = %s", got)
	}

	for _, in := range []string{"aGVsbG8/Pg==", "aGVsbG8_Pg", "aGVs\nbG8/Pg"} {
		got, err := DecodeBase64(in)
		if err != nil {
			t.Fatalf("DecodeBase64(%q): %v", in, err)
		}
		if got != "hello?>" {
			t.Errorf("DecodeBase64(%q) = %q", in, got)
		}
	}

	if _, err := DecodeBase64("!!!"); !errors.Is(err, ErrInvalidBase64) {
		t.Errorf("expected ErrInvalidBase64, got %v", err)
	}
	if _, err := DecodeBase64(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestURLCodec(t *testing.T) {
	tests := []struct {
		mode URLMode
		in   string
		want string
	}{
		{ComponentMode, "a b&c=d+e", "a%20b%26c%3Dd%2Be"},
		{PathMode, "a b/c", "a%20b%2Fc"},
	}
	for _, tt := range tests {
		got, err := EncodeURL(tt.in, tt.mode)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("EncodeURL(%q, %s) = %q, want %q", tt.in, tt.mode, got, tt.want)
		}
		back, err := DecodeURL(got, tt.mode)
		if err != nil {
			t.Fatal(err)
		}
		if back != tt.in {
			t.Errorf("DecodeURL round trip = %q, want %q", back, tt.in)
		}
	}

	if got, _ := DecodeURL("a+b", ComponentMode); got != "a b" {
		t.Errorf("plus decoding = %q", got)
	}
	if _, err := DecodeURL("%zz", ""); !errors.Is(err, ErrInvalidEscape) {
		t.Errorf("expected ErrInvalidEscape, got %v", err)
	}
	if _, err := EncodeURL("x", "fragment"); !errors.Is(err, ErrURLMode) {
		t.Errorf("expected ErrURLMode, got %v", err)
	}
}
