package jset

// FuncMode selects how the pixel coordinate enters the iterated map.
type FuncMode string

const (
	// ModeMandelbrot seeds z at zero and uses the pixel coordinate as the
	// map's free parameter c.
	ModeMandelbrot FuncMode = "mandelbrot"
	// ModeJulia seeds z at the pixel coordinate and holds c fixed at Seed.
	ModeJulia FuncMode = "julia"
)

// IteratedFunction describes one complex map z -> P(z)/Q(z) + c.
//
// Numerator and Denominator list the coefficients of P and Q in ascending
// order of power, so Numerator[k] multiplies z^k. An empty Denominator
// means Q = 1, a plain polynomial map. The classic Mandelbrot map z^2 + c
// is Numerator = [0, 0, 1] in ModeMandelbrot.
type IteratedFunction struct {
	Mode         FuncMode  `toml:"mode"`
	Numerator    []Complex `toml:"numerator"`
	Denominator  []Complex `toml:"denominator,omitempty"`
	Seed         Complex   `toml:"seed"`
	MaxIter      int       `toml:"max_iter"`
	EscapeRadius float64   `toml:"escape_radius"`
}

// Degree returns the effective polynomial degree of the map, used as the
// log base when smoothing the escape count. For rational maps this is
// deg P - deg Q. Anything below 2 (linear maps, degree-lowering
// denominators) is reported as 2, the classic value.
func (f IteratedFunction) Degree() float64 {
	d := polyDegree(f.Numerator) - polyDegree(f.Denominator)
	if d < 2 {
		return 2
	}
	return float64(d)
}

// polyDegree is the index of the highest nonzero coefficient, or 0 for an
// empty or all-zero list.
func polyDegree(coefs []Complex) int {
	for k := len(coefs) - 1; k >= 0; k-- {
		if coefs[k].Re != 0 || coefs[k].Im != 0 {
			return k
		}
	}
	return 0
}

func (f IteratedFunction) validate() error {
	switch f.Mode {
	case ModeMandelbrot, ModeJulia:
	default:
		return &FieldError{Field: "function.mode", Reason: `must be "mandelbrot" or "julia"`}
	}
	if len(f.Numerator) == 0 {
		return &FieldError{Field: "function.numerator", Reason: "at least one coefficient required"}
	}
	if f.MaxIter < 1 {
		return &FieldError{Field: "function.max_iter", Reason: "must be at least 1"}
	}
	if f.EscapeRadius <= 0 {
		return &FieldError{Field: "function.escape_radius", Reason: "must be positive"}
	}
	return nil
}
