package ui

import (
	"math/rand"
	"strings"
	"time"
)

const defaultTagline = "Color & CSS Developer Tools"

var taglines = []string{
	"Color & CSS Developer Tools",
	"Hex in, everything out",
	"Contrast checked, palettes picked",
	"Gradients without the guesswork",
	"Every shade of #",
	"Seeing color the way everyone does",
	"Small tools for sharp pixels",
	"Pretty-printing since the first brace",
	"Your CSS, minus the trial and error",
	"From pixel to palette",
}

type taglineRule struct {
	month   time.Month
	day     int
	tagline string
}

var holidayTaglines = []taglineRule{
	{month: time.December, day: 24, tagline: "🎄 #C41E3A and #228B22, as tradition demands"},
	{month: time.December, day: 25, tagline: "🎄 Tinsel tested for AA contrast"},
	{month: time.October, day: 31, tagline: "🎃 Now with extra #FF7518"},
	{month: time.February, day: 14, tagline: "💘 Palettes in every shade of #FF69B4"},
	{month: time.January, day: 1, tagline: "🎉 New year, new color scheme"},
}

// PickTagline returns a random tagline, considering holidays
func PickTagline() string {
	now := time.Now()
	return pickTagline(now, rand.New(rand.NewSource(now.UnixNano())))
}

func pickTagline(now time.Time, r *rand.Rand) string {
	for _, rule := range holidayTaglines {
		if rule.month == now.Month() && rule.day == now.Day() {
			return rule.tagline
		}
	}
	if len(taglines) == 0 {
		return defaultTagline
	}
	return taglines[r.Intn(len(taglines))]
}

// FormatTagline wraps a tagline with optional styling
func FormatTagline(tagline string) string {
	if !IsRich() {
		return tagline
	}
	for _, p := range []string{"🎄", "🎃", "💘", "🎉"} {
		if strings.HasPrefix(tagline, p) {
			return tagline
		}
	}
	return AccentDim("%s", tagline)
}
