package ui

import (
	"fmt"
	"os"
	"strings"
)

var bannerEmitted = false

const bannerWidth = 60

// FormatBanner returns the boxed product banner.
func FormatBanner(version, tagline string) string {
	badge := Badge(" ◆ DEVTOOLBOX ")
	if !IsRich() {
		badge = " ◆ DEVTOOLBOX "
	}

	title := badge + " " + Muted("%s", version)
	titlePad := max(bannerWidth-2-VisibleWidth(title), 0)
	subPad := max(bannerWidth-2-VisibleWidth(tagline), 0)

	lines := []string{
		Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, bannerWidth)+boxTopRight),
		fmt.Sprintf("%s  %s%s", Muted("%s", boxVertical), title, Muted("%s", spaces(titlePad)+boxVertical)),
		fmt.Sprintf("%s  %s%s", Muted("%s", boxVertical), FormatTagline(tagline), Muted("%s", spaces(subPad)+boxVertical)),
		Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, bannerWidth)+boxBottomRight),
	}
	return strings.Join(lines, "\n")
}

// PrintBanner displays the banner once per process.
func PrintBanner(version string) {
	if bannerEmitted {
		return
	}
	// Skip for --json or --version flags
	for _, arg := range os.Args[1:] {
		if arg == "--json" || arg == "-json" || arg == "--version" || arg == "-v" {
			return
		}
	}

	fmt.Println()
	fmt.Println(FormatBanner(version, PickTagline()))
	fmt.Println()
	bannerEmitted = true
}
