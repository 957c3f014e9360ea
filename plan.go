package ctfft

import (
	"context"

	"github.com/cwbudde/ctfft/internal/fft"
	m "github.com/cwbudde/ctfft/internal/math"
	"github.com/cwbudde/ctfft/internal/planner"
)

// Plan transforms signals of one fixed length with one strategy.
//
// The length is validated once by NewPlan and the strategy's working memory
// (scratch buffer, bit-reversal indices, twiddle table) is allocated up
// front. A Plan is not safe for concurrent use.
type Plan struct {
	n        int
	strategy Strategy
	ws       *fft.Workspace
}

type planConfig struct {
	strategy Strategy
	grain    int
	wisdom   *Wisdom
}

// PlanOption configures NewPlan.
type PlanOption func(*planConfig)

// WithStrategy selects the transform strategy. The default is StrategyAuto.
func WithStrategy(s Strategy) PlanOption {
	return func(c *planConfig) { c.strategy = s }
}

// WithGrainSize sets the node size below which StrategyParallel stops
// spawning goroutines. Values below 2 are ignored.
func WithGrainSize(n int) PlanOption {
	return func(c *planConfig) {
		if n >= 2 {
			c.grain = n
		}
	}
}

// WithWisdom makes StrategyAuto consult w instead of the default wisdom.
func WithWisdom(w *Wisdom) PlanOption {
	return func(c *planConfig) { c.wisdom = w }
}

// NewPlan creates a plan for signals of length n. It returns
// ErrInvalidLength unless n is a positive power of two and
// ErrUnknownStrategy for strategies outside the declared set.
func NewPlan(n int, opts ...PlanOption) (*Plan, error) {
	if !m.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	cfg := planConfig{strategy: StrategyAuto, grain: fft.DefaultGrainSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.strategy > StrategyTable {
		return nil, ErrUnknownStrategy
	}

	strategy := planner.Resolve(n, cfg.strategy, cfg.wisdom)

	ws := fft.NewWorkspace(n, strategy)
	ws.Grain = cfg.grain

	return &Plan{n: n, strategy: strategy, ws: ws}, nil
}

// Len returns the signal length the plan accepts.
func (p *Plan) Len() int {
	return p.n
}

// Strategy returns the resolved strategy (never StrategyAuto).
func (p *Plan) Strategy() Strategy {
	return p.strategy
}

// Transform replaces signal with its normalized DFT.
func (p *Plan) Transform(signal Signal) error {
	return p.TransformContext(context.Background(), signal)
}

// TransformContext is Transform with cancellation. Only StrategyParallel
// observes ctx; when it reports an error the signal contents are
// unspecified.
func (p *Plan) TransformContext(ctx context.Context, signal Signal) error {
	if signal == nil {
		return ErrNilSlice
	}

	if len(signal) != p.n {
		return ErrLengthMismatch
	}

	return fft.Forward(ctx, signal, p.strategy, p.ws)
}
