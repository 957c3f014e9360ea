package fftypes

import "strings"

// Strategy selects the transform implementation used by a plan.
// Every strategy computes the same 1/sqrt(n)-normalized DFT.
type Strategy uint32

const (
	StrategyAuto      Strategy = iota
	StrategyRecursive          // Fresh even/odd halves per level (reference)
	StrategyScratch            // Single n-sized scratch buffer, strided views
	StrategyIterative          // Bit-reversal permutation + bottom-up stages
	StrategyParallel           // Recursive halves transformed concurrently
	StrategyTable              // Recursive with precomputed twiddle table
)

var strategyNames = [...]string{
	StrategyAuto:      "auto",
	StrategyRecursive: "recursive",
	StrategyScratch:   "scratch",
	StrategyIterative: "iterative",
	StrategyParallel:  "parallel",
	StrategyTable:     "table",
}

// String returns the lower-case name of the strategy.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}

	return "unknown"
}

// ParseStrategy resolves a strategy by name (case-insensitive).
func ParseStrategy(name string) (Strategy, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), true
		}
	}

	return StrategyAuto, false
}

// Strategies returns every concrete (non-auto) strategy.
func Strategies() []Strategy {
	return []Strategy{
		StrategyRecursive,
		StrategyScratch,
		StrategyIterative,
		StrategyParallel,
		StrategyTable,
	}
}
