package colormath

import (
	"fmt"
	"math"
)

// WCAG 2.x thresholds.
const (
	AANormal  = 4.5
	AALarge   = 3.0
	AAANormal = 7.0
	AAALarge  = 4.5
)

const (
	minFontSize = 8
	maxFontSize = 72
)

// Rating is a coarse label for a contrast ratio.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingPoor      Rating = "Poor"
)

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c RGB) float64 {
	c = c.Clamp()
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(v int) float64 {
	f := float64(v) / 255
	if f <= 0.03928 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}

// ContrastRatio returns (lighter+0.05)/(darker+0.05). The result is
// symmetric and never below 1.
func ContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// RateContrast maps a ratio to its label.
func RateContrast(ratio float64) Rating {
	switch {
	case ratio >= AAANormal:
		return RatingExcellent
	case ratio >= AANormal:
		return RatingGood
	case ratio >= AALarge:
		return RatingFair
	default:
		return RatingPoor
	}
}

// ContrastInput is the state of the contrast checker.
type ContrastInput struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	FontSize   int    `json:"font_size"`
	Bold       bool   `json:"bold"`
}

// Swap exchanges foreground and background.
func (in ContrastInput) Swap() ContrastInput {
	in.Foreground, in.Background = in.Background, in.Foreground
	return in
}

// IsLargeText reports whether the font qualifies as large text: 18px, or
// 14px when bold.
func (in ContrastInput) IsLargeText() bool {
	size := clampInt(in.FontSize, minFontSize, maxFontSize)
	return size >= 18 || (in.Bold && size >= 14)
}

// LevelResult holds the pass/fail grid for one conformance level.
type LevelResult struct {
	Normal bool `json:"normal"`
	Large  bool `json:"large"`
}

// ContrastReport is the result of CheckContrast.
type ContrastReport struct {
	Foreground          string      `json:"foreground"`
	Background          string      `json:"background"`
	ForegroundLuminance float64     `json:"foreground_luminance"`
	BackgroundLuminance float64     `json:"background_luminance"`
	Ratio               float64     `json:"ratio"`
	Formatted           string      `json:"formatted"`
	FontSize            int         `json:"font_size"`
	LargeText           bool        `json:"large_text"`
	AALevels            LevelResult `json:"aa_levels"`
	AAALevels           LevelResult `json:"aaa_levels"`
	AA                  bool        `json:"aa"`
	AAA                 bool        `json:"aaa"`
	Rating              Rating      `json:"rating"`
}

// CheckContrast evaluates a foreground/background pair against WCAG.
func CheckContrast(in ContrastInput) (ContrastReport, error) {
	fg, err := ParseColor(in.Foreground)
	if err != nil {
		return ContrastReport{}, fmt.Errorf("foreground: %w", err)
	}
	bg, err := ParseColor(in.Background)
	if err != nil {
		return ContrastReport{}, fmt.Errorf("background: %w", err)
	}

	ratio := ContrastRatio(fg, bg)
	large := in.IsLargeText()

	report := ContrastReport{
		Foreground:          fg.Hex(),
		Background:          bg.Hex(),
		ForegroundLuminance: RelativeLuminance(fg),
		BackgroundLuminance: RelativeLuminance(bg),
		Ratio:               ratio,
		Formatted:           FormatRatio(ratio),
		FontSize:            clampInt(in.FontSize, minFontSize, maxFontSize),
		LargeText:           large,
		AALevels:            LevelResult{Normal: ratio >= AANormal, Large: ratio >= AALarge},
		AAALevels:           LevelResult{Normal: ratio >= AAANormal, Large: ratio >= AAALarge},
		Rating:              RateContrast(ratio),
	}
	if large {
		report.AA = report.AALevels.Large
		report.AAA = report.AAALevels.Large
	} else {
		report.AA = report.AALevels.Normal
		report.AAA = report.AAALevels.Normal
	}
	return report, nil
}

// FormatRatio renders a ratio as "4.50:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
