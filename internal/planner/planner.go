package planner

import "github.com/cwbudde/ctfft/internal/fftypes"

// Fallback is the strategy used for StrategyAuto when no wisdom is known:
// it matches the reference output bit for bit with O(n) auxiliary space.
const Fallback = fftypes.StrategyScratch

// Resolve maps s to a concrete strategy for size n. Explicit strategies are
// returned unchanged; StrategyAuto consults wisdom (nil means DefaultWisdom).
func Resolve(n int, s fftypes.Strategy, wisdom *Wisdom) fftypes.Strategy {
	if s != fftypes.StrategyAuto {
		return s
	}

	if wisdom == nil {
		wisdom = DefaultWisdom
	}

	if e, ok := wisdom.Lookup(n); ok {
		return e.Strategy
	}

	return Fallback
}
