package fft

import m "github.com/cwbudde/ctfft/internal/math"

// Iterative computes the unnormalized DFT of data in place, bottom-up.
//
// After the bit-reversal permutation every block of size 2, 4, ..., n holds
// its even half followed by its odd half, so each stage applies the same
// butterfly as one level of Recursive. bitrev must be
// m.BitReversalIndices(len(data)).
func Iterative(data []Complex, bitrev []int) {
	n := len(data)
	if n <= 1 {
		return
	}

	m.PermuteInPlace(data, bitrev)

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		wn := rootOfUnity(size)

		for start := 0; start < n; start += size {
			block := data[start : start+size]
			butterfly(block, block[:half], block[half:], wn)
		}
	}
}
