// Package fft implements the radix-2 decimation-in-time transforms behind
// the public Plan type.
//
// The kernels here trust their caller: lengths must be exact powers of two
// and no validation is performed. Every kernel produces the unnormalized DFT;
// Forward applies the 1/sqrt(n) scaling once, after the kernel returns.
package fft

import (
	"math"

	"github.com/cwbudde/ctfft/internal/fftypes"
	m "github.com/cwbudde/ctfft/internal/math"
)

// Complex is the canonical complex value type from internal/fftypes.
type Complex = fftypes.Complex

// Strategy is re-exported from internal/fftypes.
type Strategy = fftypes.Strategy

// rootOfUnity returns exp(-2πi/n), the twiddle increment for a size-n node.
func rootOfUnity(n int) Complex {
	ang := -m.TwoPi / float64(n)
	return Complex{Real: math.Cos(ang), Imag: math.Sin(ang)}
}

// butterfly combines the half-size transforms even and odd into dst.
// The twiddle starts at 1 and is advanced by wn after every pair. dst may
// alias even and odd as dst[:half] and dst[half:].
func butterfly(dst, even, odd []Complex, wn Complex) {
	half := len(even)
	w := Complex{Real: 1}

	for i := range half {
		p := even[i]
		q := w.Mul(odd[i])
		dst[i] = p.Add(q)
		dst[i+half] = p.Sub(q)
		w = w.Mul(wn)
	}
}
