package ctfft

import (
	"math"
	"math/rand/v2"
	"testing"
)

// Shared test helper functions used across multiple test files

func randomSignal(n int, seed uint64) Signal {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	s := make(Signal, n)

	for i := range s {
		s[i] = NewComplex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return s
}

func assertSignalClose(t *testing.T, got, want []Complex, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		dr := math.Abs(got[i].Real - want[i].Real)
		di := math.Abs(got[i].Imag - want[i].Imag)

		if dr > tol || di > tol {
			t.Fatalf("index %d: got %v want %v (diff=%g,%g)", i, got[i], want[i], dr, di)
		}
	}
}
