// Package bench times transforms across sizes and strategies and turns the
// winners into wisdom.
package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/ctfft"
	"github.com/cwbudde/ctfft/internal/cpu"
	"github.com/cwbudde/ctfft/internal/logging"
	"github.com/cwbudde/ctfft/internal/signalgen"
)

// ErrNoWork is returned by Run when there is nothing to measure.
var ErrNoWork = errors.New("bench: no sizes or strategies")

// Options selects what Run measures and how often.
type Options struct {
	// Sizes are transform lengths, each a power of two.
	Sizes      []int
	Strategies []ctfft.Strategy
	Iterations int
	Warmup     int
	Seed       uint64
	// GrainSize is passed to parallel plans; zero keeps the default.
	GrainSize int
	Logger    logging.Logger
}

// Result holds the timings of one (size, strategy) pair.
type Result struct {
	Size     int
	Strategy ctfft.Strategy
	// Samples are per-iteration wall times in nanoseconds.
	Samples []float64
	Cycles  []float64

	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	// CyclesPerOp is the mean counter delta per transform.
	CyclesPerOp float64
}

// NsPerOp is the mean wall time of one transform.
func (r Result) NsPerOp() float64 {
	return r.Mean
}

// Measure returns the wall time of one call to fn.
func Measure(fn func()) time.Duration {
	sw := cpu.StartStopwatch()
	fn()
	d, _ := sw.Stop()

	return d
}

// Run benchmarks every size against every strategy. The input is a fixed
// random signal per size, copied back before each transform so every
// iteration sees the same data. ctx is checked between iterations.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if len(opts.Sizes) == 0 || len(opts.Strategies) == 0 {
		return nil, ErrNoWork
	}

	if opts.Iterations < 1 {
		opts.Iterations = 1
	}

	log := opts.Logger
	if log == nil {
		log = logging.GetGlobalLogger()
	}

	results := make([]Result, 0, len(opts.Sizes)*len(opts.Strategies))

	for _, n := range opts.Sizes {
		src := signalgen.Random(n, opts.Seed)
		buf := make(ctfft.Signal, n)

		for _, s := range opts.Strategies {
			res, err := runOne(ctx, n, s, src, buf, opts)
			if err != nil {
				return results, fmt.Errorf("size %d %s: %w", n, s, err)
			}

			log.Debug("benchmark finished", logging.Fields{
				"size":     n,
				"strategy": s.String(),
				"ns_op":    res.NsPerOp(),
			})

			results = append(results, res)
		}
	}

	return results, nil
}

func runOne(ctx context.Context, n int, s ctfft.Strategy, src, buf ctfft.Signal, opts Options) (Result, error) {
	planOpts := []ctfft.PlanOption{ctfft.WithStrategy(s)}
	if opts.GrainSize > 0 {
		planOpts = append(planOpts, ctfft.WithGrainSize(opts.GrainSize))
	}

	plan, err := ctfft.NewPlan(n, planOpts...)
	if err != nil {
		return Result{}, err
	}

	for range opts.Warmup {
		copy(buf, src)

		if err := plan.TransformContext(ctx, buf); err != nil {
			return Result{}, err
		}
	}

	runtime.GC()

	res := Result{
		Size:     n,
		Strategy: plan.Strategy(),
		Samples:  make([]float64, 0, opts.Iterations),
		Cycles:   make([]float64, 0, opts.Iterations),
	}

	for range opts.Iterations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		copy(buf, src)

		sw := cpu.StartStopwatch()
		err := plan.TransformContext(ctx, buf)
		wall, cycles := sw.Stop()

		if err != nil {
			return Result{}, err
		}

		res.Samples = append(res.Samples, float64(wall.Nanoseconds()))
		res.Cycles = append(res.Cycles, float64(cycles))
	}

	res.summarize()

	return res, nil
}

func (r *Result) summarize() {
	if len(r.Samples) == 0 {
		return
	}

	r.Mean, r.StdDev = stat.MeanStdDev(r.Samples, nil)
	if len(r.Samples) < 2 {
		r.StdDev = 0
	}

	r.Min = floats.Min(r.Samples)

	sorted := slices.Clone(r.Samples)
	slices.Sort(sorted)
	r.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	r.CyclesPerOp = stat.Mean(r.Cycles, nil)
}

// Best returns the fastest result per size, ordered by size.
func Best(results []Result) []Result {
	best := make(map[int]Result)

	for _, r := range results {
		if cur, ok := best[r.Size]; !ok || r.NsPerOp() < cur.NsPerOp() {
			best[r.Size] = r
		}
	}

	out := make([]Result, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}

	slices.SortFunc(out, func(a, b Result) int { return a.Size - b.Size })

	return out
}

// RecordWisdom stores the winner of each size in w and returns how many
// entries were added or improved.
func RecordWisdom(w *ctfft.Wisdom, results []Result, now time.Time) int {
	stored := 0

	for _, r := range Best(results) {
		if w.Record(ctfft.WisdomEntry{
			Size:      r.Size,
			Strategy:  r.Strategy,
			NsPerOp:   r.NsPerOp(),
			Timestamp: now,
		}) {
			stored++
		}
	}

	return stored
}
