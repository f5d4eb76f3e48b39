// Package render turns a jset.ParameterSet into pixels: it maps pixel
// coordinates onto the complex plane, iterates the configured map per
// pixel across a bounded worker pool, and colors the resulting divergence
// grid through the gradient.
package render

import (
	"math"

	"github.com/d2718/jset"
)

// PlanePoint maps the pixel (x, y) of a width x height image onto the
// complex plane through vp. The vertical axis is inverted: increasing y
// moves down the image but up is positive imaginary. A nonzero rotation
// turns the frame about the viewport center.
func PlanePoint(vp jset.Viewport, x, y float64, width, height int) complex128 {
	u := (x - float64(width)/2) * vp.Scale
	v := -(y - float64(height)/2) * vp.Scale
	if vp.Rotation != 0 {
		sin, cos := math.Sincos(vp.Rotation)
		u, v = u*cos-v*sin, u*sin+v*cos
	}
	return complex(vp.Center.Re+u, vp.Center.Im+v)
}
