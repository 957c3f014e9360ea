package fft

import (
	"math"
	"math/rand/v2"
	"testing"
)

const testTol = 1e-9

func randomSignal(n int, seed uint64) []Complex {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	x := make([]Complex, n)

	for i := range x {
		x[i] = Complex{Real: rng.Float64()*2 - 1, Imag: rng.Float64()*2 - 1}
	}

	return x
}

func assertSliceClose(t *testing.T, got, want []Complex, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if math.Abs(got[i].Real-want[i].Real) > tol || math.Abs(got[i].Imag-want[i].Imag) > tol {
			t.Fatalf("index %d: got %v, want %v (tol %g)", i, got[i], want[i], tol)
		}
	}
}

func assertSliceEqual(t *testing.T, got, want []Complex) {
	t.Helper()

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v (bit-exact)", i, got[i], want[i])
		}
	}
}

// forward runs a strategy on a copy of src.
func forward(t *testing.T, src []Complex, s Strategy) []Complex {
	t.Helper()

	data := append([]Complex(nil), src...)

	ws := NewWorkspace(len(data), s)
	ws.Grain = 4

	if err := Forward(t.Context(), data, s, ws); err != nil {
		t.Fatalf("Forward(%v): %v", s, err)
	}

	return data
}
