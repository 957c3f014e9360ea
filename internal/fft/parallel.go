package fft

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultGrainSize is the node size below which Parallel stops forking and
// falls back to Recursive.
const DefaultGrainSize = 1 << 12

// Parallel computes the unnormalized DFT of data in place, transforming the
// even and odd halves of every node larger than grain concurrently.
//
// The halves never alias, so the result equals Recursive bit for bit.
// Cancellation is checked before each fork; on error data is left in an
// unspecified state.
func Parallel(ctx context.Context, data []Complex, grain int) error {
	n := len(data)
	if n <= 1 {
		return nil
	}

	if grain < 2 {
		grain = 2
	}

	if n <= grain {
		Recursive(data)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	half := n / 2
	even := make([]Complex, half)
	odd := make([]Complex, half)

	for i := range half {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return Parallel(gctx, even, grain)
	})
	g.Go(func() error {
		return Parallel(gctx, odd, grain)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	butterfly(data, even, odd, rootOfUnity(n))

	return nil
}
