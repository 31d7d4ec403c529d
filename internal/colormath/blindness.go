package colormath

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrUnknownDeficiency is returned by ParseDeficiency.
var ErrUnknownDeficiency = errors.New("unknown color vision deficiency")

// Deficiency is a simulated type of color vision.
type Deficiency string

const (
	Normal        Deficiency = "normal"
	Protanopia    Deficiency = "protanopia"
	Deuteranopia  Deficiency = "deuteranopia"
	Tritanopia    Deficiency = "tritanopia"
	Achromatopsia Deficiency = "achromatopsia"
)

// Deficiencies lists every supported deficiency in display order.
func Deficiencies() []Deficiency {
	return []Deficiency{Normal, Protanopia, Deuteranopia, Tritanopia, Achromatopsia}
}

// Description is the short human explanation shown next to each swatch.
func (d Deficiency) Description() string {
	switch d {
	case Protanopia:
		return "Red-blind: missing L cones"
	case Deuteranopia:
		return "Green-blind: missing M cones"
	case Tritanopia:
		return "Blue-blind: missing S cones"
	case Achromatopsia:
		return "Total color blindness"
	default:
		return "Normal color vision"
	}
}

// ParseDeficiency parses a deficiency name case-insensitively.
func ParseDeficiency(s string) (Deficiency, error) {
	d := Deficiency(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Deficiencies() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDeficiency, s)
}

var (
	rgbToLMS = mat.NewDense(3, 3, []float64{
		17.8824, 43.5161, 4.11935,
		3.45565, 27.1554, 3.86714,
		0.0299566, 0.184309, 1.46709,
	})
	lmsToRGB = mat.NewDense(3, 3, []float64{
		0.080944, -0.130504, 0.116721,
		-0.0102485, 0.0540194, -0.113615,
		-0.000365294, -0.00412163, 0.693513,
	})
	// Protanopia replaces L first and then derives M from the new L, so
	// its matrix is the product of those two steps and has no L input.
	deficiencyLMS = map[Deficiency]*mat.Dense{
		Protanopia: mat.NewDense(3, 3, []float64{
			0, 2.02344, 0,
			0, 0.494207 * 2.02344, 1.24827,
			0, 0, 1,
		}),
		Deuteranopia: mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0.866435, 0, 0.133565,
			0, 0, 1,
		}),
		Tritanopia: mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			-0.395913, 0.801109, 0,
		}),
	}

	// simulation[d] = lmsToRGB * deficiency * rgbToLMS, flattened row-major.
	simulation = composeSimulations()
)

func composeSimulations() map[Deficiency][9]float64 {
	out := make(map[Deficiency][9]float64, len(deficiencyLMS))
	for d, m := range deficiencyLMS {
		var tmp, full mat.Dense
		tmp.Mul(m, rgbToLMS)
		full.Mul(lmsToRGB, &tmp)

		var flat [9]float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				flat[i*3+j] = full.At(i, j)
			}
		}
		out[d] = flat
	}
	return out
}

// SimulationMatrix returns the composed RGB to RGB matrix for d, row-major.
// The second result is false for Normal and Achromatopsia, which are not
// linear LMS transforms.
func SimulationMatrix(d Deficiency) ([9]float64, bool) {
	m, ok := simulation[d]
	return m, ok
}

// ApplyMatrix multiplies c by a matrix from SimulationMatrix.
func ApplyMatrix(m [9]float64, c RGB) RGB {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return RGB{
		R: channel(m[0]*r + m[1]*g + m[2]*b),
		G: channel(m[3]*r + m[4]*g + m[5]*b),
		B: channel(m[6]*r + m[7]*g + m[8]*b),
	}
}

// Simulate returns how c appears to a viewer with deficiency d.
func Simulate(c RGB, d Deficiency) RGB {
	c = c.Clamp()
	switch d {
	case Achromatopsia:
		return Gray(c)
	case Protanopia, Deuteranopia, Tritanopia:
		return ApplyMatrix(simulation[d], c)
	default:
		return c
	}
}

// Gray is the achromatopsia rendering of c: the mean of its channels.
func Gray(c RGB) RGB {
	v := int(math.Round(float64(c.R+c.G+c.B) / 3))
	return RGB{R: v, G: v, B: v}
}

func channel(v float64) int {
	return clampInt(int(math.Round(v)), 0, 255)
}

// SimulatedSwatch is one entry of the simulation panel.
type SimulatedSwatch struct {
	Deficiency  Deficiency `json:"deficiency"`
	Description string     `json:"description"`
	Hex         string     `json:"hex"`
	RGB         RGB        `json:"rgb"`
}

// SimulateAll runs every deficiency over c.
func SimulateAll(c RGB) []SimulatedSwatch {
	defs := Deficiencies()
	out := make([]SimulatedSwatch, 0, len(defs))
	for _, d := range defs {
		s := Simulate(c, d)
		out = append(out, SimulatedSwatch{
			Deficiency:  d,
			Description: d.Description(),
			Hex:         s.Hex(),
			RGB:         s,
		})
	}
	return out
}
