//go:build amd64

package cpu

const hasCycleCounter = true

// readCycleCounter reads the timestamp counter with RDTSC.
// Implemented in cycles_amd64.s.
//
//go:noescape
func readCycleCounter() int64

// getCounterFrequencyHz returns 0: the TSC rate is calibrated instead.
func getCounterFrequencyHz() int64 {
	return 0
}
