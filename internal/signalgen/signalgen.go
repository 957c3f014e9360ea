// Package signalgen produces the synthetic input signals used by the
// benchmark command, the example and the tests.
package signalgen

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/ctfft"
)

// Two-tone parameters: a unit tone at 10θ and a half-amplitude tone at 25θ
// with θ = iπ/n.
const (
	PrimaryCycles   = 10.0
	SecondaryCycles = 25.0
	SecondaryGain   = 0.5
)

// TwoTone returns n samples of
//
//	cos(10θ) + 0.5·cos(25θ) + i·(sin(10θ) + 0.5·sin(25θ)),  θ = iπ/n,
//
// with both parts rounded to two decimal places.
func TwoTone(n int) ctfft.Signal {
	sig := make(ctfft.Signal, n)
	step := math.Pi / float64(n)

	for i := range sig {
		theta := float64(i) * step
		re := math.Cos(PrimaryCycles*theta) + SecondaryGain*math.Cos(SecondaryCycles*theta)
		im := math.Sin(PrimaryCycles*theta) + SecondaryGain*math.Sin(SecondaryCycles*theta)
		sig[i] = ctfft.NewComplex(Round2(re), Round2(im))
	}

	return sig
}

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Random returns n samples with real and imaginary parts uniform in [-1, 1),
// reproducible for a given seed.
func Random(n int, seed uint64) ctfft.Signal {
	rng := rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb))
	sig := make(ctfft.Signal, n)

	for i := range sig {
		sig[i] = ctfft.NewComplex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return sig
}
