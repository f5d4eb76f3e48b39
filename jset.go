// Package jset holds the canonical description of an escape-time fractal
// image: the viewport onto the complex plane, the iterated map, the color
// gradient, and the pixel dimensions. A ParameterSet is everything needed
// to recreate an image; the render package turns one into pixels and the
// imgio package moves one in and out of files.
package jset

import "math"

// Complex is a serializable complex value. The iteration hot loop works on
// complex128; this type exists so coefficients and coordinates survive a
// trip through the parameter text format.
type Complex struct {
	Re float64 `toml:"re"`
	Im float64 `toml:"im"`
}

// Cmplx converts to the built-in complex type.
func (c Complex) Cmplx() complex128 {
	return complex(c.Re, c.Im)
}

// FromCmplx converts from the built-in complex type.
func FromCmplx(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// Polar builds a Complex from modulus r and phase theta.
func Polar(r, theta float64) Complex {
	return Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}
}

// RGB is a color as three byte channels.
type RGB struct {
	R uint8 `toml:"r"`
	G uint8 `toml:"g"`
	B uint8 `toml:"b"`
}

// Viewport frames a region of the complex plane. Scale is plane units per
// pixel; Rotation is an angle in radians applied about the center.
type Viewport struct {
	Center   Complex `toml:"center"`
	Scale    float64 `toml:"scale"`
	Rotation float64 `toml:"rotation,omitempty"`
}

// Zoom returns a viewport framing the same center, magnified by factor.
// A factor greater than 1 zooms in.
func (v Viewport) Zoom(factor float64) Viewport {
	v.Scale /= factor
	return v
}

// Recenter returns a viewport whose center is the point xFrac of the way
// across and yFrac of the way down an image of the given pixel dimensions
// rendered through v.
func (v Viewport) Recenter(xFrac, yFrac float64, width, height int) Viewport {
	dx := (xFrac - 0.5) * float64(width) * v.Scale
	dy := (yFrac - 0.5) * float64(height) * v.Scale
	sin, cos := math.Sincos(v.Rotation)
	v.Center.Re += dx*cos - (-dy)*sin
	v.Center.Im += dx*sin + (-dy)*cos
	return v
}
