package ui

import (
	"fmt"
	"sort"
	"strings"
)

// Align is a column's cell alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// TableColumn maps a row key to a headed column.
type TableColumn struct {
	Key    string
	Header string
	Align  Align
}

// RenderTableOptions holds the columns and rows passed to RenderTable.
type RenderTableOptions struct {
	Columns []TableColumn
	Rows    []map[string]string
}

// RenderTable draws rows in a rounded box with one space of padding per
// cell. Widths are measured without ANSI escapes, so styled cells line up.
func RenderTable(opts RenderTableOptions) string {
	widths := make([]int, len(opts.Columns))
	for i, col := range opts.Columns {
		widths[i] = VisibleWidth(col.Header)
		for _, row := range opts.Rows {
			widths[i] = max(widths[i], VisibleWidth(row[col.Key]))
		}
	}

	rule := func(left, mid, right string) string {
		segs := make([]string, len(widths))
		for i, w := range widths {
			segs[i] = strings.Repeat(boxHorizontal, w+2)
		}
		return left + strings.Join(segs, mid) + right
	}
	line := func(cell func(TableColumn) string) string {
		var b strings.Builder
		b.WriteString(boxVertical)
		for i, col := range opts.Columns {
			b.WriteString(" " + alignCell(cell(col), widths[i], col.Align) + " " + boxVertical)
		}
		return b.String()
	}

	lines := []string{
		rule(boxTopLeft, "┬", boxTopRight),
		line(func(c TableColumn) string { return Heading("%s", c.Header) }),
		rule("├", "┼", "┤"),
	}
	for _, row := range opts.Rows {
		lines = append(lines, line(func(c TableColumn) string { return row[c.Key] }))
	}
	lines = append(lines, rule(boxBottomLeft, "┴", boxBottomRight))
	return strings.Join(lines, "\n") + "\n"
}

func alignCell(s string, width int, a Align) string {
	pad := width - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	switch a {
	case AlignRight:
		return spaces(pad) + s
	case AlignCenter:
		return spaces(pad/2) + s + spaces(pad-pad/2)
	}
	return s + spaces(pad)
}

// RenderSimpleTable renders key-value pairs sorted by key
func RenderSimpleTable(data map[string]string) string {
	keys := make([]string, 0, len(data))
	maxKey := 0
	for k := range data {
		keys = append(keys, k)
		maxKey = max(maxKey, VisibleWidth(k))
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s  %s", Muted("%s", PadRight(k+":", maxKey+1)), data[k]))
	}
	return strings.Join(lines, "\n")
}
