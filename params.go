package jset

import "fmt"

// FieldError reports a ParameterSet invariant violation, naming the field
// in parameter-text notation (e.g. "viewport.scale").
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParameterSet aggregates everything required to recreate an image. It is
// the unit of persistence and the sole input to a render call. Callers
// treat it as immutable while a render is in flight.
type ParameterSet struct {
	Width    int              `toml:"width"`
	Height   int              `toml:"height"`
	Viewport Viewport         `toml:"viewport"`
	Function IteratedFunction `toml:"function"`
	Colors   ColorMap         `toml:"colors"`
}

// Validate checks every invariant of the set. Rendering assumes a
// validated set; construction and deserialization are the gate.
func (p *ParameterSet) Validate() error {
	if p.Width < 1 {
		return &FieldError{Field: "width", Reason: "must be positive"}
	}
	if p.Height < 1 {
		return &FieldError{Field: "height", Reason: "must be positive"}
	}
	if p.Viewport.Scale <= 0 {
		return &FieldError{Field: "viewport.scale", Reason: "must be positive"}
	}
	if err := p.Function.validate(); err != nil {
		return err
	}
	return p.Colors.validate()
}

// DefaultParameters frames the full Mandelbrot set under the classic
// z^2 + c map with a grayscale gradient.
func DefaultParameters() *ParameterSet {
	return &ParameterSet{
		Width:  800,
		Height: 600,
		Viewport: Viewport{
			Center: Complex{Re: -0.5},
			Scale:  2.4 / 600.0,
		},
		Function: IteratedFunction{
			Mode:         ModeMandelbrot,
			Numerator:    []Complex{{}, {}, {Re: 1}},
			MaxIter:      100,
			EscapeRadius: 2,
		},
		Colors: ColorMap{
			Stops: []ColorStop{
				{Pos: 0, Color: RGB{R: 0, G: 0, B: 0}},
				{Pos: 1, Color: RGB{R: 255, G: 255, B: 255}},
			},
			Interior: RGB{R: 0, G: 0, B: 0},
		},
	}
}
