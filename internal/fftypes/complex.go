package fftypes

import "math"

// Complex is a double-precision complex value stored as an explicit
// (real, imaginary) pair. Operations return new values and never modify
// their operands.
type Complex struct {
	Real float64
	Imag float64
}

// NewComplex returns the complex value re + im·i.
func NewComplex(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Complex {
	return Complex{Real: real(c), Imag: imag(c)}
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{Real: c.Real + o.Real, Imag: c.Imag + o.Imag}
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{Real: c.Real - o.Real, Imag: c.Imag - o.Imag}
}

// Mul returns the complex product c·o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Real: c.Real*o.Real - c.Imag*o.Imag,
		Imag: c.Real*o.Imag + c.Imag*o.Real,
	}
}

// Scale returns c multiplied by the real scalar s.
func (c Complex) Scale(s float64) Complex {
	return Complex{Real: c.Real * s, Imag: c.Imag * s}
}

// Abs2 returns |c|².
func (c Complex) Abs2() float64 {
	return c.Real*c.Real + c.Imag*c.Imag
}

// Abs returns |c|.
func (c Complex) Abs() float64 {
	return math.Hypot(c.Real, c.Imag)
}

// Complex128 converts c to the builtin complex type.
func (c Complex) Complex128() complex128 {
	return complex(c.Real, c.Imag)
}
