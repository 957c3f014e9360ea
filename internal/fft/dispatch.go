package fft

import (
	"context"

	"github.com/cwbudde/ctfft/internal/fftypes"
	m "github.com/cwbudde/ctfft/internal/math"
)

// Workspace holds the per-size state a strategy needs between calls.
// Only the fields used by the chosen strategy are populated.
type Workspace struct {
	Scratch []Complex
	Bitrev  []int
	Twiddle []Complex
	Grain   int
}

// NewWorkspace allocates the state strategy s needs for size-n transforms.
func NewWorkspace(n int, s Strategy) *Workspace {
	ws := &Workspace{Grain: DefaultGrainSize}

	switch s {
	case fftypes.StrategyScratch:
		ws.Scratch = make([]Complex, n)
	case fftypes.StrategyIterative:
		ws.Bitrev = m.BitReversalIndices(n)
	case fftypes.StrategyTable:
		ws.Twiddle = TwiddleTable(n)
	}

	return ws
}

// Forward runs strategy s over data and applies the 1/sqrt(n) normalization
// exactly once. StrategyAuto must be resolved by the caller; it is treated as
// StrategyRecursive here.
func Forward(ctx context.Context, data []Complex, s Strategy, ws *Workspace) error {
	switch s {
	case fftypes.StrategyScratch:
		Scratch(data, ws.Scratch)
	case fftypes.StrategyIterative:
		Iterative(data, ws.Bitrev)
	case fftypes.StrategyParallel:
		if err := Parallel(ctx, data, ws.Grain); err != nil {
			return err
		}
	case fftypes.StrategyTable:
		Table(data, ws.Twiddle)
	default:
		Recursive(data)
	}

	Normalize(data)

	return nil
}
