//go:build arm64

package cpu

const hasCycleCounter = true

// readCycleCounter reads the virtual counter (CNTVCT_EL0).
// Implemented in cycles_arm64.s.
//
//go:noescape
func readCycleCounter() int64

// getCounterFrequencyHz reads CNTFRQ_EL0.
// Implemented in cycles_arm64.s.
//
//go:noescape
func getCounterFrequencyHz() int64
