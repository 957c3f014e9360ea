package fft

import (
	"math"
	"testing"

	"github.com/cwbudde/ctfft/internal/fftypes"
)

func TestRootOfUnity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want Complex
	}{
		{1, Complex{Real: 1}},
		{2, Complex{Real: -1}},
		{4, Complex{Imag: -1}},
		{8, Complex{Real: math.Sqrt2 / 2, Imag: -math.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		got := rootOfUnity(tt.n)
		if math.Abs(got.Real-tt.want.Real) > 1e-15 || math.Abs(got.Imag-tt.want.Imag) > 1e-15 {
			t.Errorf("rootOfUnity(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestButterflyAliasing(t *testing.T) {
	t.Parallel()

	even := []Complex{{Real: 1, Imag: 2}, {Real: -3, Imag: 0.5}}
	odd := []Complex{{Real: 0.25, Imag: -1}, {Real: 4, Imag: 4}}
	wn := rootOfUnity(4)

	separate := make([]Complex, 4)
	butterfly(separate, even, odd, wn)

	aliased := append(append([]Complex(nil), even...), odd...)
	butterfly(aliased, aliased[:2], aliased[2:], wn)

	assertSliceEqual(t, aliased, separate)
}

func TestNewWorkspace(t *testing.T) {
	t.Parallel()

	n := 64

	if ws := NewWorkspace(n, fftypes.StrategyScratch); len(ws.Scratch) != n {
		t.Errorf("scratch len = %d, want %d", len(ws.Scratch), n)
	}

	if ws := NewWorkspace(n, fftypes.StrategyIterative); len(ws.Bitrev) != n {
		t.Errorf("bitrev len = %d, want %d", len(ws.Bitrev), n)
	}

	if ws := NewWorkspace(n, fftypes.StrategyTable); len(ws.Twiddle) != n/2 {
		t.Errorf("twiddle len = %d, want %d", len(ws.Twiddle), n/2)
	}

	ws := NewWorkspace(n, fftypes.StrategyRecursive)
	if ws.Scratch != nil || ws.Bitrev != nil || ws.Twiddle != nil {
		t.Error("recursive workspace should not allocate")
	}

	if ws.Grain != DefaultGrainSize {
		t.Errorf("grain = %d, want %d", ws.Grain, DefaultGrainSize)
	}
}
