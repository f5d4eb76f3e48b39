package jset

import "fmt"

// ColorStop anchors a color at a position in [0, 1] along the gradient.
type ColorStop struct {
	Pos   float64 `toml:"pos"`
	Color RGB     `toml:"color"`
}

// ColorMap turns a normalized divergence value into a color by linear
// interpolation between stops. Stops are kept sorted ascending with unique
// positions; Interior colors the points that never diverge.
type ColorMap struct {
	Stops    []ColorStop `toml:"stops"`
	Interior RGB         `toml:"interior"`
}

// ColorAt returns the gradient color for t. A t exactly at a stop's
// position returns that stop's color with no interpolation; values outside
// the stop range clamp to the nearest endpoint.
func (m ColorMap) ColorAt(t float64) RGB {
	stops := m.Stops
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	last := len(stops) - 1
	if t >= stops[last].Pos {
		return stops[last].Color
	}
	// Find the bracketing pair. Stop counts are small enough that a linear
	// scan beats a binary search in practice.
	hi := 1
	for stops[hi].Pos < t {
		hi++
	}
	if stops[hi].Pos == t {
		return stops[hi].Color
	}
	lo := hi - 1
	frac := (t - stops[lo].Pos) / (stops[hi].Pos - stops[lo].Pos)
	return lerpRGB(stops[lo].Color, stops[hi].Color, frac)
}

func lerpRGB(a, b RGB, frac float64) RGB {
	return RGB{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
	}
}

func lerpByte(a, b uint8, frac float64) uint8 {
	return uint8(float64(a) + frac*(float64(b)-float64(a)) + 0.5)
}

// ReplaceStop swaps the color at stop index i, leaving its position alone.
func (m *ColorMap) ReplaceStop(i int, c RGB) error {
	if i < 0 || i >= len(m.Stops) {
		return fmt.Errorf("no color stop at index %d", i)
	}
	m.Stops[i].Color = c
	return nil
}

// CopyColor copies the color of one stop onto another, the data-model form
// of dragging one gradient swatch onto another.
func (m *ColorMap) CopyColor(from, to int) error {
	if from < 0 || from >= len(m.Stops) {
		return fmt.Errorf("no color stop at index %d", from)
	}
	return m.ReplaceStop(to, m.Stops[from].Color)
}

func (m ColorMap) validate() error {
	if len(m.Stops) == 0 {
		return &FieldError{Field: "colors.stops", Reason: "at least one stop required"}
	}
	for i, s := range m.Stops {
		if s.Pos < 0 || s.Pos > 1 {
			return &FieldError{
				Field:  fmt.Sprintf("colors.stops[%d].pos", i),
				Reason: "must be in [0, 1]",
			}
		}
		if i > 0 && s.Pos <= m.Stops[i-1].Pos {
			return &FieldError{
				Field:  fmt.Sprintf("colors.stops[%d].pos", i),
				Reason: "stops must be sorted ascending with unique positions",
			}
		}
	}
	return nil
}
