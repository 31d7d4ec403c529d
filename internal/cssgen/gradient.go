package cssgen

import (
	"fmt"
	"sort"
	"strings"
)

const (
	MinStops = 2
	MaxStops = 10
)

// GradientType selects linear-gradient or radial-gradient.
type GradientType string

const (
	Linear GradientType = "linear"
	Radial GradientType = "radial"
)

// ColorStop is a color at a position in percent.
type ColorStop struct {
	Color    string  `json:"color"`
	Position float64 `json:"position"`
}

// Gradient is the state of the gradient generator.
type Gradient struct {
	Type  GradientType `json:"type"`
	Angle int          `json:"angle"`
	Stops []ColorStop  `json:"stops"`
}

// DefaultGradient is the generator's initial indigo to pink gradient.
func DefaultGradient() Gradient {
	return Gradient{
		Type:  Linear,
		Angle: 90,
		Stops: []ColorStop{
			{Color: "#6366f1", Position: 0},
			{Color: "#ec4899", Position: 100},
		},
	}
}

// SortedStops returns a position-ordered copy of the stops. Equal
// positions keep their input order.
func (g Gradient) SortedStops() []ColorStop {
	out := make([]ColorStop, len(g.Stops))
	copy(out, g.Stops)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// CSS renders the background declaration.
func (g Gradient) CSS() (string, error) {
	if len(g.Stops) < MinStops {
		return "", fmt.Errorf("%w: got %d", ErrTooFewStops, len(g.Stops))
	}
	if len(g.Stops) > MaxStops {
		return "", fmt.Errorf("%w: got %d", ErrTooManyStops, len(g.Stops))
	}
	kind, err := oneOf("type", string(g.Type), string(Linear), string(Linear), string(Radial))
	if err != nil {
		return "", err
	}

	stops := g.SortedStops()
	parts := make([]string, 0, len(stops))
	for i, s := range stops {
		c, err := checkColor(fmt.Sprintf("stop %d", i+1), s.Color)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s %s%%", c, num(clampF(s.Position, 0, 100))))
	}
	list := strings.Join(parts, ", ")

	if GradientType(kind) == Radial {
		return fmt.Sprintf("background: radial-gradient(circle, %s);", list), nil
	}
	return fmt.Sprintf("background: linear-gradient(%ddeg, %s);", clamp(g.Angle, 0, 360), list), nil
}

// AddStop returns a copy of g with a white stop at 50%.
func (g Gradient) AddStop() (Gradient, error) {
	return g.AddColorStop(ColorStop{Color: "#ffffff", Position: 50})
}

// AddColorStop returns a copy of g with s appended.
func (g Gradient) AddColorStop(s ColorStop) (Gradient, error) {
	if len(g.Stops) >= MaxStops {
		return g, ErrTooManyStops
	}
	stops := make([]ColorStop, len(g.Stops), len(g.Stops)+1)
	copy(stops, g.Stops)
	g.Stops = append(stops, s)
	return g, nil
}

// RemoveStop returns a copy of g without the stop at index i.
func (g Gradient) RemoveStop(i int) (Gradient, error) {
	if len(g.Stops) <= MinStops {
		return g, ErrTooFewStops
	}
	if i < 0 || i >= len(g.Stops) {
		return g, fmt.Errorf("%w: %d", ErrStopIndex, i)
	}
	stops := make([]ColorStop, 0, len(g.Stops)-1)
	stops = append(stops, g.Stops[:i]...)
	g.Stops = append(stops, g.Stops[i+1:]...)
	return g, nil
}
