package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func TestStripAnsi(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"sgr", "\x1b[31mred\x1b[0m", "red"},
		{"truecolor", "\x1b[38;2;99;102;241mbrand\x1b[0m", "brand"},
		{"hyperlink", "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\", "link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripAnsi(tt.input); got != tt.want {
				t.Errorf("StripAnsi(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleWidth(t *testing.T) {
	if got := VisibleWidth("\x1b[1m◆ DEV\x1b[0m"); got != 5 {
		t.Errorf("VisibleWidth = %d, want 5", got)
	}
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := TruncateVisible("abcdefghij", 6); got != "abc..." {
		t.Errorf("TruncateVisible = %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(RenderTableOptions{
		Columns: []TableColumn{
			{Key: "path", Header: "Path"},
			{Key: "method", Header: "Method", Align: AlignRight},
		},
		Rows: []map[string]string{
			{"path": "/v1/color/convert", "method": "POST"},
			{"path": "/healthz", "method": "GET"},
		},
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	width := VisibleWidth(lines[0])
	for i, l := range lines {
		if VisibleWidth(l) != width {
			t.Errorf("line %d width %d, want %d", i, VisibleWidth(l), width)
		}
	}
	if !strings.Contains(lines[4], "/healthz") || !strings.HasSuffix(lines[4], " GET │") {
		t.Errorf("row not right-aligned: %q", lines[4])
	}
}

func TestRenderSimpleTableSorted(t *testing.T) {
	out := StripAnsi(RenderSimpleTable(map[string]string{"b": "2", "a": "1"}))
	if strings.Index(out, "a:") > strings.Index(out, "b:") {
		t.Errorf("keys not sorted:\n%s", out)
	}
}

func TestSwatch(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := Swatch("#f00"); got != "#ff0000" {
		t.Errorf("Swatch plain = %q", got)
	}
	if got := Swatch("nope"); got != "nope" {
		t.Errorf("Swatch invalid = %q", got)
	}
	if got := SwatchRow([]string{"#000", "#fff"}); got != "#000000  #ffffff" {
		t.Errorf("SwatchRow = %q", got)
	}
}

func TestPickTaglineHoliday(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	got := pickTagline(time.Date(2026, time.October, 31, 12, 0, 0, 0, time.UTC), r)
	if !strings.HasPrefix(got, "🎃") {
		t.Errorf("halloween tagline = %q", got)
	}

	got = pickTagline(time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC), r)
	found := false
	for _, tl := range taglines {
		if tl == got {
			found = true
		}
	}
	if !found {
		t.Errorf("tagline %q not in pool", got)
	}
}

func TestFormatNote(t *testing.T) {
	out := StripAnsi(FormatNote("ratio 4.5:1 passes AA", "✓ Pass"))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "✓ Pass") || !strings.Contains(lines[1], "ratio 4.5:1 passes AA") {
		t.Errorf("unexpected note:\n%s", out)
	}
	if VisibleWidth(lines[0]) != VisibleWidth(lines[2]) {
		t.Errorf("borders differ in width:\n%s", out)
	}
}

func TestFormatRequest(t *testing.T) {
	line := StripAnsi(FormatRequest("POST", "/v1/color/convert", 200, 1500*time.Microsecond, "anonymous"))
	for _, want := range []string{"POST", "/v1/color/convert", "200", "1.5ms", "anonymous"} {
		if !strings.Contains(line, want) {
			t.Errorf("request line %q missing %q", line, want)
		}
	}
}
