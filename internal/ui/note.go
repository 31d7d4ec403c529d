package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Note displays a boxed message with optional title
func Note(message string, title string) {
	fmt.Println()
	fmt.Println(FormatNote(message, title))
	fmt.Println()
}

// FormatNote returns the boxed message printed by Note.
func FormatNote(message string, title string) string {
	lines := strings.Split(WrapNoteMessage(message, 80), "\n")

	maxWidth := VisibleWidth(title) + 2
	for _, line := range lines {
		maxWidth = max(maxWidth, VisibleWidth(line))
	}
	boxWidth := maxWidth + 4

	var out []string
	if title != "" {
		styledTitle := title
		if IsRich() {
			styledTitle = Heading("%s", title)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, 2)),
			styledTitle,
			Muted("%s", strings.Repeat(boxHorizontal, boxWidth-4-VisibleWidth(title))+boxTopRight)))
	} else {
		out = append(out, Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, boxWidth)+boxTopRight))
	}

	for _, line := range lines {
		padding := max(boxWidth-VisibleWidth(line)-2, 0)
		out = append(out, fmt.Sprintf("%s %s%s %s",
			Muted("%s", boxVertical), line, spaces(padding), Muted("%s", boxVertical)))
	}

	out = append(out, Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, boxWidth)+boxBottomRight))
	return strings.Join(out, "\n")
}

// WrapNoteMessage wraps text to fit within terminal width
func WrapNoteMessage(message string, maxWidth int) string {
	columns := 80
	if term, ok := os.LookupEnv("COLUMNS"); ok {
		if n := parseIntOr(term, 80); n > 0 {
			columns = n
		}
	}

	width := min(columns-10, maxWidth)
	if width < 40 {
		width = 40
	}

	var outputLines []string
	for _, line := range strings.Split(message, "\n") {
		outputLines = append(outputLines, wrapLine(line, width)...)
	}
	return strings.Join(outputLines, "\n")
}

// wrapLine wraps a single line to width
func wrapLine(line string, maxWidth int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := current
		if current != "" {
			candidate += " "
		}
		candidate += word

		if VisibleWidth(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// parseIntOr parses an int or returns default
func parseIntOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// WarningNote displays a warning-styled note
func WarningNote(message string) {
	Note(message, "⚠ Warning")
}
