// Package reference provides transforms that do not share code with the
// radix-2 kernels, for tests and for producing verification files.
//
// Every function returns a new slice holding the DFT scaled by 1/sqrt(n),
// the same normalization the ctfft transforms use.
package reference

import (
	"fmt"
	"math"
	"strings"

	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/ctfft/internal/fftypes"
	m "github.com/cwbudde/ctfft/internal/math"
)

// Complex is the canonical complex value type from internal/fftypes.
type Complex = fftypes.Complex

// NaiveDFT evaluates the DFT directly in O(n²). Angles are computed per term
// from k·j mod n to keep the reference itself free of accumulated drift.
func NaiveDFT(x []Complex) []Complex {
	n := len(x)
	out := make([]Complex, n)

	if n == 0 {
		return out
	}

	scale := 1 / math.Sqrt(float64(n))

	for k := range n {
		var re, im float64

		for j, v := range x {
			ang := -m.TwoPi * float64((k*j)%n) / float64(n)
			c, s := math.Cos(ang), math.Sin(ang)
			re += v.Real*c - v.Imag*s
			im += v.Real*s + v.Imag*c
		}

		out[k] = Complex{Real: re * scale, Imag: im * scale}
	}

	return out
}

// GoDSP transforms x with github.com/mjibson/go-dsp/fft.
func GoDSP(x []Complex) []Complex {
	if len(x) == 0 {
		return []Complex{}
	}

	return fromBuiltin(dspfft.FFT(toBuiltin(x)))
}

// Gonum transforms x with gonum.org/v1/gonum/dsp/fourier.
func Gonum(x []Complex) []Complex {
	if len(x) == 0 {
		return []Complex{}
	}

	t := fourier.NewCmplxFFT(len(x))

	return fromBuiltin(t.Coefficients(nil, toBuiltin(x)))
}

// Engine names an independent transform implementation.
type Engine string

const (
	EngineNaive Engine = "naive"
	EngineGoDSP Engine = "godsp"
	EngineGonum Engine = "gonum"
)

// Engines lists the available engines.
func Engines() []Engine {
	return []Engine{EngineNaive, EngineGoDSP, EngineGonum}
}

// ParseEngine resolves an engine by name.
func ParseEngine(name string) (Engine, error) {
	e := Engine(strings.ToLower(strings.TrimSpace(name)))
	switch e {
	case EngineNaive, EngineGoDSP, EngineGonum:
		return e, nil
	default:
		return "", fmt.Errorf("unknown reference engine %q", name)
	}
}

// Transform runs engine e over x.
func (e Engine) Transform(x []Complex) []Complex {
	switch e {
	case EngineGoDSP:
		return GoDSP(x)
	case EngineGonum:
		return Gonum(x)
	default:
		return NaiveDFT(x)
	}
}

func toBuiltin(x []Complex) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = v.Complex128()
	}

	return out
}

// fromBuiltin converts and applies the 1/sqrt(n) normalization.
func fromBuiltin(x []complex128) []Complex {
	scale := 1 / math.Sqrt(float64(len(x)))
	out := make([]Complex, len(x))

	for i, v := range x {
		out[i] = fftypes.FromComplex128(v).Scale(scale)
	}

	return out
}
