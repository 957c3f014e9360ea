package cpu

import (
	"runtime"
	"testing"
	"time"
)

func TestReadCycleCounterMonotonic(t *testing.T) {
	c1 := ReadCycleCounter()

	if !hasCycleCounter {
		time.Sleep(time.Microsecond)
	}

	c2 := ReadCycleCounter()
	if c2 <= c1 {
		t.Errorf("cycle counter not monotonic: c1=%d, c2=%d", c1, c2)
	}
}

func TestCyclesToNanoseconds(t *testing.T) {
	start := ReadCycleCounter()
	wall := time.Now()

	time.Sleep(10 * time.Millisecond)

	converted := CyclesToNanoseconds(CyclesSince(start))
	actual := time.Since(wall).Nanoseconds()

	// Loose bounds: calibration, sleep precision and scheduling all add noise.
	ratio := float64(converted) / float64(actual)
	if ratio < 0.5 || ratio > 2.0 {
		t.Errorf("converted %d ns, actual %d ns (ratio %.2f)", converted, actual, ratio)
	}
}

func TestCounterFrequency(t *testing.T) {
	freq := CounterFrequencyHz()

	if hasCycleCounter && freq <= 0 {
		t.Errorf("CounterFrequencyHz() = %d on %s, want > 0", freq, runtime.GOARCH)
	}

	t.Logf("counter frequency: %.2f MHz", float64(freq)/1e6)
}

func TestStopwatch(t *testing.T) {
	sw := StartStopwatch()

	time.Sleep(2 * time.Millisecond)

	elapsed, cycles := sw.Stop()
	if elapsed < 2*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 2ms", elapsed)
	}

	if cycles <= 0 {
		t.Errorf("cycles = %d, want > 0", cycles)
	}
}

func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	if f.NumCPU < 1 {
		t.Errorf("NumCPU = %d", f.NumCPU)
	}

	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Error("amd64 without SSE2")
	}

	want := Features{Architecture: "amd64", HasSSE2: true, HasAVX2: true}
	if got := want.String(); got != "amd64[sse2,avx2]" {
		t.Errorf("String() = %q", got)
	}
}

func BenchmarkReadCycleCounter(b *testing.B) {
	for range b.N {
		_ = ReadCycleCounter()
	}
}
