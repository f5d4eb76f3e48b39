package render

import (
	"math"

	"github.com/d2718/jset"
)

// evaluator is an IteratedFunction compiled for the hot loop: coefficient
// slices converted to complex128 once, escape and smoothing constants
// precomputed.
type evaluator struct {
	num, den []complex128
	mandel   bool
	seed     complex128
	maxIter  int
	r2       float64 // squared escape radius
	logR     float64
	logDeg   float64
}

func compile(f jset.IteratedFunction) evaluator {
	return evaluator{
		num:     toCmplx(f.Numerator),
		den:     toCmplx(f.Denominator),
		mandel:  f.Mode == jset.ModeMandelbrot,
		seed:    f.Seed.Cmplx(),
		maxIter: f.MaxIter,
		r2:      f.EscapeRadius * f.EscapeRadius,
		logR:    math.Log(f.EscapeRadius),
		logDeg:  math.Log(f.Degree()),
	}
}

func toCmplx(coefs []jset.Complex) []complex128 {
	if len(coefs) == 0 {
		return nil
	}
	out := make([]complex128, len(coefs))
	for i, c := range coefs {
		out[i] = c.Cmplx()
	}
	return out
}

// step advances z one iteration: P(z)/Q(z) + c.
func (e *evaluator) step(z, c complex128) complex128 {
	w := horner(e.num, z)
	if e.den != nil {
		w /= horner(e.den, z)
	}
	return w + c
}

// horner evaluates a polynomial with ascending coefficients at z.
func horner(coefs []complex128, z complex128) complex128 {
	w := coefs[len(coefs)-1]
	for k := len(coefs) - 2; k >= 0; k-- {
		w = w*z + coefs[k]
	}
	return w
}

func finite(z complex128) bool {
	re, im := real(z), imag(z)
	return !math.IsInf(re, 0) && !math.IsNaN(re) && !math.IsInf(im, 0) && !math.IsNaN(im)
}

// escapeValue iterates the map seeded from the plane point p and returns
// the smoothed escape count, or the sentinel float64(maxIter) when the
// point never diverges. A non-finite intermediate (overflow, division by
// near-zero) counts as divergence at that iteration, not an error.
func (e *evaluator) escapeValue(p complex128) float64 {
	var z, c complex128
	if e.mandel {
		c = p
	} else {
		z, c = p, e.seed
	}

	sentinel := float64(e.maxIter)
	for n := 0; n < e.maxIter; n++ {
		z = e.step(z, c)
		if !finite(z) {
			return clampEscape(float64(n)+1, sentinel)
		}
		m2 := real(z)*real(z) + imag(z)*imag(z)
		if m2 > e.r2 {
			// Renormalized ("smooth") iteration count; log|z| via the
			// squared modulus to avoid a sqrt in the hot path.
			v := float64(n) + 1 - math.Log(0.5*math.Log(m2)/e.logR)/e.logDeg
			if math.IsNaN(v) {
				v = float64(n)
			}
			return clampEscape(v, sentinel)
		}
	}
	return sentinel
}

// clampEscape keeps smoothed values inside [0, sentinel) so an escaping
// point can never collide with the non-divergence sentinel.
func clampEscape(v, sentinel float64) float64 {
	if v < 0 {
		return 0
	}
	if v >= sentinel {
		return math.Nextafter(sentinel, 0)
	}
	return v
}
