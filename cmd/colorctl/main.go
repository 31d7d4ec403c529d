// Package main provides colorctl, the terminal front end for the color
// tools: conversion, contrast checks, palettes, vision simulation and the
// CSS named color table.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"devtoolbox/internal/colormath"
	"devtoolbox/internal/ui"
)

// Version can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "1.4.0"

const usage = `Usage: colorctl <command> [flags] [args]

Commands:
  convert  <color>                 Show a color in every notation
  contrast -fg <color> -bg <color> WCAG contrast ratio and AA/AAA result
  palette  [-scheme s] <color>     Harmonic palette from a base color
  shades   [-amount n] <color>     Lighter and darker variants
  blind    <color>                 Color vision deficiency simulation
  named    [-nearest c] [term]     Search the CSS named colors
  version                          Print version and exit

Every command accepts -json for machine-readable output.
`

var errUsage = errors.New("usage")

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "convert":
		err = runConvert(rest, stdout)
	case "contrast":
		err = runContrast(rest, stdout)
	case "palette":
		err = runPalette(rest, stdout)
	case "shades":
		err = runShades(rest, stdout)
	case "blind":
		err = runBlind(rest, stdout)
	case "named":
		err = runNamed(rest, stdout)
	case "version", "-v", "--version":
		fmt.Fprintf(stdout, "colorctl version %s\n", Version)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	switch {
	case errors.Is(err, errUsage):
		fmt.Fprint(stderr, usage)
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "%s %v\n", ui.Error("error:"), err)
		return 1
	}
	return 0
}

// newFlags returns a flag set for cmd that reports errors instead of
// exiting, plus its -json switch.
func newFlags(cmd string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs, fs.Bool("json", false, "Print JSON")
}

// parseFlags turns flag errors into usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// oneArg parses fs and returns its single positional argument.
func oneArg(fs *flag.FlagSet, args []string) (string, error) {
	if err := parseFlags(fs, args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", errUsage
	}
	return fs.Arg(0), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runConvert(args []string, w io.Writer) error {
	fs, asJSON := newFlags("convert")
	input, err := oneArg(fs, args)
	if err != nil {
		return err
	}
	conv, err := colormath.Convert(input)
	if err != nil {
		return err
	}
	nearest := colormath.NearestNamed(conv.RGB)
	if *asJSON {
		return writeJSON(w, struct {
			colormath.Conversion
			Nearest colormath.NearestMatch `json:"nearest"`
		}{conv, nearest})
	}

	fmt.Fprintln(w, ui.Swatch(conv.Hex))
	name := nearest.Name
	if !nearest.Exact {
		name = fmt.Sprintf("~%s (distance %.1f)", nearest.Name, nearest.Distance)
	}
	fmt.Fprintln(w, ui.RenderSimpleTable(map[string]string{
		"hex":  conv.Hex,
		"rgb":  conv.RGBCSS,
		"hsl":  conv.HSLCSS,
		"name": name,
	}))
	return nil
}

func runContrast(args []string, w io.Writer) error {
	fs, asJSON := newFlags("contrast")
	fg := fs.String("fg", "", "Foreground (text) color")
	bg := fs.String("bg", "", "Background color")
	size := fs.Int("size", 16, "Font size in px")
	bold := fs.Bool("bold", false, "Bold text")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *fg == "" || *bg == "" {
		return errUsage
	}

	report, err := colormath.CheckContrast(colormath.ContrastInput{
		Foreground: *fg,
		Background: *bg,
		FontSize:   *size,
		Bold:       *bold,
	})
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(w, report)
	}

	fmt.Fprintf(w, "%s  on  %s\n", ui.Swatch(report.Foreground), ui.Swatch(report.Background))
	fmt.Fprint(w, ui.RenderTable(ui.RenderTableOptions{
		Columns: []ui.TableColumn{
			{Key: "level", Header: "Level"},
			{Key: "normal", Header: "Normal text", Align: ui.AlignCenter},
			{Key: "large", Header: "Large text", Align: ui.AlignCenter},
		},
		Rows: []map[string]string{
			{"level": "AA", "normal": mark(report.AALevels.Normal), "large": mark(report.AALevels.Large)},
			{"level": "AAA", "normal": mark(report.AAALevels.Normal), "large": mark(report.AAALevels.Large)},
		},
	}))

	textKind := "normal"
	if report.LargeText {
		textKind = "large"
	}
	msg := fmt.Sprintf("Ratio %s (%s) for %dpx %s text.", report.Formatted, report.Rating, report.FontSize, textKind)
	title := "✗ Fail"
	switch {
	case report.AAA:
		title = "✓ AAA"
	case report.AA:
		title = "✓ AA"
	}
	fmt.Fprintln(w, ui.FormatNote(msg, title))
	return nil
}

func mark(ok bool) string {
	if ok {
		return ui.Success("pass")
	}
	return ui.Error("fail")
}

func runPalette(args []string, w io.Writer) error {
	fs, asJSON := newFlags("palette")
	scheme := fs.String("scheme", string(colormath.Analogous), "Harmony scheme")
	css := fs.Bool("css", false, "Print CSS custom properties")
	base, err := oneArg(fs, args)
	if err != nil {
		return err
	}
	s, err := colormath.ParseScheme(*scheme)
	if err != nil {
		return err
	}
	p, err := colormath.GeneratePalette(base, s)
	if err != nil {
		return err
	}

	switch {
	case *asJSON:
		return writeJSON(w, p)
	case *css:
		fmt.Fprintln(w, p.CSSVariables())
	default:
		fmt.Fprintf(w, "%s palette from %s\n", p.Scheme, p.Base)
		fmt.Fprintln(w, ui.SwatchRow(p.Colors))
	}
	return nil
}

func runShades(args []string, w io.Writer) error {
	fs, asJSON := newFlags("shades")
	amount := fs.Int("amount", 10, "Amount added to or taken from each channel")
	input, err := oneArg(fs, args)
	if err != nil {
		return err
	}
	c, err := colormath.ParseColor(input)
	if err != nil {
		return err
	}
	lighter, err := colormath.Lighten(c.Hex(), *amount)
	if err != nil {
		return err
	}
	darker, err := colormath.Darken(c.Hex(), *amount)
	if err != nil {
		return err
	}

	shades := []string{darker.Hex(), c.Hex(), lighter.Hex()}
	if *asJSON {
		return writeJSON(w, map[string]string{"darker": shades[0], "base": shades[1], "lighter": shades[2]})
	}
	fmt.Fprintln(w, ui.SwatchRow(shades))
	return nil
}

func runBlind(args []string, w io.Writer) error {
	fs, asJSON := newFlags("blind")
	input, err := oneArg(fs, args)
	if err != nil {
		return err
	}
	c, err := colormath.ParseColor(input)
	if err != nil {
		return err
	}
	sims := colormath.SimulateAll(c)
	if *asJSON {
		return writeJSON(w, sims)
	}

	rows := make([]map[string]string, 0, len(sims))
	for _, s := range sims {
		rows = append(rows, map[string]string{
			"type":   string(s.Deficiency),
			"color":  ui.Swatch(s.Hex),
			"detail": s.Description,
		})
	}
	fmt.Fprint(w, ui.RenderTable(ui.RenderTableOptions{
		Columns: []ui.TableColumn{
			{Key: "type", Header: "Vision"},
			{Key: "color", Header: "Seen as"},
			{Key: "detail", Header: "Description"},
		},
		Rows: rows,
	}))
	return nil
}

func runNamed(args []string, w io.Writer) error {
	fs, asJSON := newFlags("named")
	nearest := fs.String("nearest", "", "Find the named color closest to this color")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *nearest != "" {
		c, err := colormath.ParseColor(*nearest)
		if err != nil {
			return err
		}
		m := colormath.NearestNamed(c)
		if *asJSON {
			return writeJSON(w, m)
		}
		fmt.Fprintf(w, "%s  %s (distance %.1f)\n", ui.Swatch(m.Hex), m.Name, m.Distance)
		return nil
	}

	colors := colormath.SearchNamed(strings.Join(fs.Args(), " "))
	if *asJSON {
		return writeJSON(w, colors)
	}
	if len(colors) == 0 {
		return fmt.Errorf("no named color matches %q", strings.Join(fs.Args(), " "))
	}
	for _, g := range colormath.GroupNamedByLetter(colors) {
		fmt.Fprintf(w, "\n%s\n", ui.Heading("%s", g.Letter))
		for _, nc := range g.Colors {
			fmt.Fprintf(w, "  %s  %s\n", ui.Swatch(nc.Hex), nc.Name)
		}
	}
	return nil
}
