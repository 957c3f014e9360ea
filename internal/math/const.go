package math

import "math"

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// Tolerance is the per-element absolute error accepted when comparing a
// transform against a reference.
const Tolerance = 1e-9
