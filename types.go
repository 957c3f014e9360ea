package ctfft

import (
	"fmt"

	"github.com/cwbudde/ctfft/internal/fftypes"
)

// Complex is a double-precision complex value (real, imaginary).
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex {
	return fftypes.NewComplex(re, im)
}

// Strategy selects the transform implementation used by a Plan.
type Strategy = fftypes.Strategy

// Available strategies. They all compute the same normalized transform;
// see the individual descriptions for their allocation behavior.
const (
	// StrategyAuto picks the strategy recorded in wisdom for the plan size,
	// falling back to StrategyScratch.
	StrategyAuto = fftypes.StrategyAuto
	// StrategyRecursive allocates fresh even/odd halves at every level.
	StrategyRecursive = fftypes.StrategyRecursive
	// StrategyScratch reuses one n-sized scratch buffer owned by the plan.
	StrategyScratch = fftypes.StrategyScratch
	// StrategyIterative permutes into bit-reversed order and runs the
	// butterfly stages bottom-up in place.
	StrategyIterative = fftypes.StrategyIterative
	// StrategyParallel transforms independent halves on separate goroutines.
	StrategyParallel = fftypes.StrategyParallel
	// StrategyTable uses a precomputed twiddle table instead of the
	// accumulated rotation. Output differs from the other strategies in the
	// last bits.
	StrategyTable = fftypes.StrategyTable
)

// ParseStrategy resolves a strategy by its String name.
func ParseStrategy(name string) (Strategy, error) {
	s, ok := fftypes.ParseStrategy(name)
	if !ok {
		return StrategyAuto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return s, nil
}

// Strategies lists every concrete strategy.
func Strategies() []Strategy {
	return fftypes.Strategies()
}
