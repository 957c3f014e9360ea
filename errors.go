package ctfft

import (
	"errors"

	"github.com/cwbudde/ctfft/internal/planner"
)

// Sentinel errors returned by FFT operations.
var (
	// ErrInvalidLength is returned when the FFT size is not a positive power
	// of two. It is reported before any data is touched.
	ErrInvalidLength = errors.New("ctfft: invalid FFT length")

	// ErrNilSlice is returned when a nil signal is passed to a transform.
	ErrNilSlice = errors.New("ctfft: nil slice")

	// ErrLengthMismatch is returned when a signal does not match the Plan
	// size.
	ErrLengthMismatch = errors.New("ctfft: slice length mismatch")

	// ErrUnknownStrategy is returned when a strategy name cannot be parsed.
	ErrUnknownStrategy = errors.New("ctfft: unknown strategy")

	// ErrMalformedWisdom is returned when a wisdom file cannot be parsed.
	ErrMalformedWisdom = planner.ErrMalformedWisdom
)
