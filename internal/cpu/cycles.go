package cpu

import (
	"sync"
	"time"
)

// ReadCycleCounter reads the CPU's cycle counter (TSC on amd64, CNTVCT_EL0
// on arm64). Other platforms fall back to time.Now in nanoseconds.
func ReadCycleCounter() int64 {
	return readCycleCounter()
}

// CyclesSince returns the number of counter ticks elapsed since start.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CyclesToNanoseconds converts counter ticks to approximate nanoseconds.
// The conversion is calibrated on first use and is meant for reporting only.
func CyclesToNanoseconds(cycles int64) int64 {
	calibrateOnce()

	switch {
	case counterFrequencyHz != 0:
		return cycles * 1_000_000_000 / counterFrequencyHz
	case cyclesPerNanosecond != 0:
		return int64(float64(cycles) / cyclesPerNanosecond)
	default:
		return cycles
	}
}

// CounterFrequencyHz returns the calibrated counter frequency, or 0 when the
// counter already runs in nanoseconds.
func CounterFrequencyHz() int64 {
	calibrateOnce()

	switch {
	case counterFrequencyHz != 0:
		return counterFrequencyHz
	case cyclesPerNanosecond != 0:
		return int64(cyclesPerNanosecond * 1e9)
	default:
		return 0
	}
}

var (
	// counterFrequencyHz is the fixed counter frequency reported by the
	// hardware (arm64 CNTFRQ_EL0).
	counterFrequencyHz int64

	// cyclesPerNanosecond is measured against the wall clock (amd64 TSC).
	cyclesPerNanosecond float64

	calibrateOnce = sync.OnceFunc(calibrate)
)

const calibrationWindow = 10 * time.Millisecond

func calibrate() {
	counterFrequencyHz = getCounterFrequencyHz()
	if counterFrequencyHz != 0 || !hasCycleCounter {
		return
	}

	start := time.Now()
	startCycles := ReadCycleCounter()

	for time.Since(start) < calibrationWindow {
	}

	cycles := ReadCycleCounter() - startCycles

	ns := time.Since(start).Nanoseconds()
	if ns > 0 && cycles > 0 {
		cyclesPerNanosecond = float64(cycles) / float64(ns)
	}
}

// Stopwatch measures one interval on both the monotonic wall clock and the
// cycle counter.
type Stopwatch struct {
	wall   time.Time
	cycles int64
}

// StartStopwatch starts a measurement.
func StartStopwatch() Stopwatch {
	return Stopwatch{wall: time.Now(), cycles: ReadCycleCounter()}
}

// Stop returns the elapsed wall time and counter ticks since the start.
func (s Stopwatch) Stop() (time.Duration, int64) {
	cycles := CyclesSince(s.cycles)
	return time.Since(s.wall), cycles
}
