package ctfft

import "slices"

// Signal is a sequence of complex samples. Before a transform it holds the
// time domain, afterwards the frequency-domain coefficients.
type Signal []Complex

// SignalFromComplex128 converts builtin complex values.
func SignalFromComplex128(x []complex128) Signal {
	s := make(Signal, len(x))
	for i, v := range x {
		s[i] = Complex{Real: real(v), Imag: imag(v)}
	}

	return s
}

// Complex128 converts s to builtin complex values.
func (s Signal) Complex128() []complex128 {
	out := make([]complex128, len(s))
	for i, v := range s {
		out[i] = complex(v.Real, v.Imag)
	}

	return out
}

// Clone returns a copy of s.
func (s Signal) Clone() Signal {
	return slices.Clone(s)
}

// Energy returns the sum of |s[i]|². A transform preserves it up to rounding.
func (s Signal) Energy() float64 {
	var e float64
	for _, v := range s {
		e += v.Abs2()
	}

	return e
}
