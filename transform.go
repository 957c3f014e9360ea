package ctfft

import (
	"context"

	"github.com/cwbudde/ctfft/internal/fft"
	m "github.com/cwbudde/ctfft/internal/math"
)

// Transform replaces signal with its DFT scaled by 1/sqrt(n), using the
// reference recursion (StrategyRecursive).
//
// It returns ErrNilSlice for a nil signal and ErrInvalidLength when
// len(signal) is not a positive power of two; in both cases signal is left
// untouched.
func Transform(signal Signal) error {
	if signal == nil {
		return ErrNilSlice
	}

	if !m.IsPowerOf2(len(signal)) {
		return ErrInvalidLength
	}

	return fft.Forward(context.Background(), signal, StrategyRecursive, &fft.Workspace{})
}
