package math

import "math/bits"

// BitReversalIndices returns the bit-reversal permutation of 0..n-1 for a
// power-of-two n. The result is nil for n <= 0.
func BitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	idx := make([]int, n)
	width := Log2(n)

	for i := range n {
		idx[i] = ReverseBits(i, width)
	}

	return idx
}

// Log2 returns the base-2 logarithm of n, rounded down. Log2(1) == 0.
func Log2(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}

// ReverseBits reverses the lower width bits of x.
// Example: ReverseBits(0b110, 3) == 0b011.
func ReverseBits(x, width int) int {
	if width <= 0 {
		return 0
	}

	return int(bits.Reverse(uint(x)) >> (bits.UintSize - width))
}

// PermuteInPlace reorders data so that data[i] and data[idx[i]] trade places.
// idx must be an involution (bit reversal is).
func PermuteInPlace[T any](data []T, idx []int) {
	for i, j := range idx {
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}
}
