package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Console color palette
var (
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)
	clrBold   = color.New(color.FgWhite, color.Bold)

	clrPrimary = color.New(color.FgMagenta, color.Bold)
	clrAccent  = color.New(color.FgCyan, color.Bold)

	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

// Box-drawing characters
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

func timestamp() string {
	return clrDim.Sprint(time.Now().Format("15:04:05"))
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning", "warn":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	fmt.Printf("%s  %s  %s\n", timestamp(), icon, styledMsg)
}

// LogSection prints a section header
func LogSection(title string) {
	fmt.Println()
	header := fmt.Sprintf("%s %s %s",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", max(50-len(title), 2))))
	fmt.Println(header)
}

// LogGroup starts a boxed block of label/value lines
func LogGroup(title string) {
	fmt.Println()
	top := fmt.Sprintf("%s %s %s",
		clrDim.Sprint(boxTopLeft+strings.Repeat(boxHorizontal, 2)),
		clrPrimary.Sprint(title),
		clrDim.Sprint(strings.Repeat(boxHorizontal, max(52-len(title), 2))+boxTopRight))
	fmt.Println(top)
}

// LogGroupItem logs an item within a group
func LogGroupItem(label, value string) {
	fmt.Printf("%s  %s %s\n",
		clrDim.Sprint(boxVertical),
		clrDim.Sprint(label+":"),
		clrAccent.Sprint(value))
}

// LogGroupEnd closes a grouped block
func LogGroupEnd() {
	fmt.Println(clrDim.Sprint(boxBottomLeft + strings.Repeat(boxHorizontal, 56) + boxBottomRight))
	fmt.Println()
}

// LogRequest prints one handled request, colored by status class.
func LogRequest(method, path string, status int, elapsed time.Duration, client string) {
	fmt.Println(FormatRequest(method, path, status, elapsed, client))
}

// FormatRequest renders the LogRequest line without the timestamp.
func FormatRequest(method, path string, status int, elapsed time.Duration, client string) string {
	statusClr := clrSuccess
	arrow := "→"
	switch {
	case status >= 500:
		statusClr, arrow = clrError, "✖"
	case status >= 400:
		statusClr, arrow = clrWarning, "!"
	}

	return fmt.Sprintf("%s  %s  %s %s  %s  %s  %s",
		timestamp(),
		statusClr.Sprint(arrow),
		clrBold.Sprintf("%-6s", method),
		clrAccent.Sprintf("%-26s", path),
		statusClr.Sprintf("%d", status),
		clrSubtle.Sprintf("%8s", formatDuration(elapsed)),
		clrDim.Sprint(client))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// LogMetric displays a metric value
func LogMetric(name string, value any, unit string) {
	fmt.Printf("%s  %s  %s: %s %s\n",
		timestamp(),
		clrDim.Sprint("◈"),
		clrSubtle.Sprint(name),
		clrAccent.Sprintf("%v", value),
		clrDim.Sprint(unit))
}

// LogGracefulShutdown announces that shutdown has begun
func LogGracefulShutdown() {
	fmt.Println()
	LogStatus("warning", "Shutting down gracefully...")
}

// PrintFooter displays a dim footer message
func PrintFooter(message string) {
	fmt.Println()
	fmt.Printf("  %s %s\n", clrDim.Sprint("▸"), clrDim.Sprint(message))
}
