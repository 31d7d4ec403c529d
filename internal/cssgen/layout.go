package cssgen

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexContainer holds the .container properties of the flexbox playground.
type FlexContainer struct {
	Display        string `json:"display"`
	FlexDirection  string `json:"flex_direction"`
	JustifyContent string `json:"justify_content"`
	AlignItems     string `json:"align_items"`
	FlexWrap       string `json:"flex_wrap"`
	Gap            string `json:"gap"`
}

// FlexItem holds the per-item properties.
type FlexItem struct {
	FlexGrow   int    `json:"flex_grow"`
	FlexShrink *int   `json:"flex_shrink,omitempty"`
	FlexBasis  string `json:"flex_basis"`
	AlignSelf  string `json:"align_self"`
}

// Flexbox is the full playground state.
type Flexbox struct {
	Container FlexContainer `json:"container"`
	Items     []FlexItem    `json:"items"`
}

// DefaultFlexbox returns a row container with three default items.
func DefaultFlexbox() Flexbox {
	return Flexbox{
		Container: FlexContainer{
			Display:        "flex",
			FlexDirection:  "row",
			JustifyContent: "flex-start",
			AlignItems:     "stretch",
			FlexWrap:       "nowrap",
			Gap:            "8px",
		},
		Items: []FlexItem{{}, {}, {}},
	}
}

// CSS renders the container rule followed by one rule per item.
func (f Flexbox) CSS() (string, error) {
	c := f.Container
	display, err := oneOf("display", c.Display, "flex", "flex", "inline-flex")
	if err != nil {
		return "", err
	}
	dir, err := oneOf("flex-direction", c.FlexDirection, "row", "row", "row-reverse", "column", "column-reverse")
	if err != nil {
		return "", err
	}
	justify, err := oneOf("justify-content", c.JustifyContent, "flex-start",
		"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly")
	if err != nil {
		return "", err
	}
	align, err := oneOf("align-items", c.AlignItems, "stretch", "stretch", "flex-start", "flex-end", "center", "baseline")
	if err != nil {
		return "", err
	}
	wrap, err := oneOf("flex-wrap", c.FlexWrap, "nowrap", "nowrap", "wrap", "wrap-reverse")
	if err != nil {
		return "", err
	}

	blocks := []string{block(".container", [][2]string{
		{"display", display},
		{"flex-direction", dir},
		{"justify-content", justify},
		{"align-items", align},
		{"flex-wrap", wrap},
		{"gap", orDefault(c.Gap, "8px")},
	})}

	for i, it := range f.Items {
		self, err := oneOf(fmt.Sprintf("item %d align-self", i+1), it.AlignSelf, "auto",
			"auto", "flex-start", "flex-end", "center", "stretch", "baseline")
		if err != nil {
			return "", err
		}
		shrink := 1
		if it.FlexShrink != nil {
			shrink = *it.FlexShrink
		}
		blocks = append(blocks, block(fmt.Sprintf(".item-%d", i+1), [][2]string{
			{"flex-grow", strconv.Itoa(max(it.FlexGrow, 0))},
			{"flex-shrink", strconv.Itoa(max(shrink, 0))},
			{"flex-basis", orDefault(it.FlexBasis, "auto")},
			{"align-self", self},
		}))
	}
	return strings.Join(blocks, "\n\n"), nil
}

// GridContainer holds the .grid-container properties.
type GridContainer struct {
	Columns        string `json:"columns"`
	Rows           string `json:"rows"`
	ColumnGap      string `json:"column_gap"`
	RowGap         string `json:"row_gap"`
	JustifyItems   string `json:"justify_items"`
	AlignItems     string `json:"align_items"`
	JustifyContent string `json:"justify_content"`
	AlignContent   string `json:"align_content"`
}

// GridItem holds the per-item placement.
type GridItem struct {
	ColumnStart string `json:"column_start"`
	ColumnEnd   string `json:"column_end"`
	RowStart    string `json:"row_start"`
	RowEnd      string `json:"row_end"`
	JustifySelf string `json:"justify_self"`
	AlignSelf   string `json:"align_self"`
}

// Grid is the full grid generator state.
type Grid struct {
	Container GridContainer `json:"container"`
	Items     []GridItem    `json:"items"`
}

// DefaultGrid returns a 3x2 grid with six auto-placed items.
func DefaultGrid() Grid {
	return Grid{
		Container: GridContainer{
			Columns:        ColumnsTemplate(3),
			Rows:           RowsTemplate(2),
			ColumnGap:      "20px",
			RowGap:         "20px",
			JustifyItems:   "stretch",
			AlignItems:     "stretch",
			JustifyContent: "start",
			AlignContent:   "start",
		},
		Items: make([]GridItem, 6),
	}
}

// ColumnsTemplate returns n equal "1fr" tracks, n clamped to 1..12.
func ColumnsTemplate(n int) string {
	return repeatTrack("1fr", n)
}

// RowsTemplate returns n "auto" tracks, n clamped to 1..12.
func RowsTemplate(n int) string {
	return repeatTrack("auto", n)
}

func repeatTrack(track string, n int) string {
	n = clamp(n, 1, 12)
	tracks := make([]string, n)
	for i := range tracks {
		tracks[i] = track
	}
	return strings.Join(tracks, " ")
}

// CSS renders the grid container rule followed by one rule per item.
func (g Grid) CSS() (string, error) {
	c := g.Container
	placement := []string{"stretch", "start", "center", "end"}
	justifyItems, err := oneOf("justify-items", c.JustifyItems, "stretch", placement...)
	if err != nil {
		return "", err
	}
	alignItems, err := oneOf("align-items", c.AlignItems, "stretch", placement...)
	if err != nil {
		return "", err
	}
	distribution := []string{"start", "end", "center", "stretch", "space-between", "space-around", "space-evenly"}
	justifyContent, err := oneOf("justify-content", c.JustifyContent, "start", distribution...)
	if err != nil {
		return "", err
	}
	alignContent, err := oneOf("align-content", c.AlignContent, "start", distribution...)
	if err != nil {
		return "", err
	}

	blocks := []string{block(".grid-container", [][2]string{
		{"display", "grid"},
		{"grid-template-columns", orDefault(c.Columns, ColumnsTemplate(3))},
		{"grid-template-rows", orDefault(c.Rows, RowsTemplate(2))},
		{"column-gap", orDefault(c.ColumnGap, "20px")},
		{"row-gap", orDefault(c.RowGap, "20px")},
		{"justify-items", justifyItems},
		{"align-items", alignItems},
		{"justify-content", justifyContent},
		{"align-content", alignContent},
	})}

	selfValues := []string{"auto", "start", "end", "center", "stretch"}
	for i, it := range g.Items {
		justifySelf, err := oneOf(fmt.Sprintf("item %d justify-self", i+1), it.JustifySelf, "auto", selfValues...)
		if err != nil {
			return "", err
		}
		alignSelf, err := oneOf(fmt.Sprintf("item %d align-self", i+1), it.AlignSelf, "auto", selfValues...)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block(fmt.Sprintf(".item-%d", i+1), [][2]string{
			{"grid-column-start", orDefault(it.ColumnStart, "auto")},
			{"grid-column-end", orDefault(it.ColumnEnd, "auto")},
			{"grid-row-start", orDefault(it.RowStart, "auto")},
			{"grid-row-end", orDefault(it.RowEnd, "auto")},
			{"justify-self", justifySelf},
			{"align-self", alignSelf},
		}))
	}
	return strings.Join(blocks, "\n\n"), nil
}

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
