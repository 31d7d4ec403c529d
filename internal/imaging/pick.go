package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"devtoolbox/internal/colormath"
)

// MaxSwatches is how many picked colors the history keeps.
const MaxSwatches = 20

// PickedColor is a sampled pixel.
type PickedColor struct {
	X     int           `json:"x"`
	Y     int           `json:"y"`
	Hex   string        `json:"hex"`
	RGB   colormath.RGB `json:"rgb"`
	HSL   colormath.HSL `json:"hsl"`
	Alpha int           `json:"alpha"`
}

// PickColor samples the pixel at (x, y), measured from the top-left
// corner of img.
func PickColor(img image.Image, x, y int) (PickedColor, error) {
	b := img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if x < 0 || y < 0 || !p.In(b) {
		return PickedColor{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, b.Dx(), b.Dy())
	}

	c := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
	rgb := colormath.RGB{R: int(c.R), G: int(c.G), B: int(c.B)}
	return PickedColor{
		X:     x,
		Y:     y,
		Hex:   rgb.Hex(),
		RGB:   rgb,
		HSL:   colormath.RGBToHSL(rgb),
		Alpha: int(c.A),
	}, nil
}

// AddSwatch returns history with hex moved or inserted at the front.
// Duplicates are dropped case-insensitively and the result holds at most
// MaxSwatches entries. history is not modified.
func AddSwatch(history []string, hex string) []string {
	hex = strings.ToLower(colormath.NormalizeHex(hex))
	out := make([]string, 0, min(len(history)+1, MaxSwatches))
	out = append(out, hex)
	for _, h := range history {
		if len(out) == MaxSwatches {
			break
		}
		if strings.EqualFold(colormath.NormalizeHex(h), hex) {
			continue
		}
		out = append(out, h)
	}
	return out
}

var byteUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatBytes renders n with 1024-based units and at most decimals
// fractional digits, trailing zeros removed: 0 -> "0 Bytes",
// 1536 -> "1.5 KB".
func FormatBytes(n int64, decimals int) string {
	if n <= 0 {
		return "0 Bytes"
	}
	decimals = max(decimals, 0)

	i := 0
	unit := int64(1)
	for i < len(byteUnits)-1 && n >= unit*1024 {
		unit *= 1024
		i++
	}
	v := float64(n) / float64(unit)

	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + byteUnits[i]
}
