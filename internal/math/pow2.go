package math

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// MaxExponent is the largest size exponent accepted by the harness (2^30
// complex values, 16 GiB).
const MaxExponent = 30
