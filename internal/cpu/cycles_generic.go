//go:build !amd64 && !arm64

package cpu

import "time"

const hasCycleCounter = false

// readCycleCounter falls back to the wall clock in nanoseconds.
func readCycleCounter() int64 {
	return time.Now().UnixNano()
}

func getCounterFrequencyHz() int64 {
	return 0
}
