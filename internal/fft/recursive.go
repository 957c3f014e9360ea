package fft

// Recursive computes the unnormalized DFT of data in place.
//
// Each call splits data into freshly allocated even- and odd-indexed halves,
// transforms them independently and combines them with an accumulated
// twiddle rotation. Transient allocation over the call tree is O(n log n).
func Recursive(data []Complex) {
	n := len(data)
	if n <= 1 {
		return
	}

	half := n / 2
	even := make([]Complex, half)
	odd := make([]Complex, half)

	for i := range half {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	Recursive(even)
	Recursive(odd)

	butterfly(data, even, odd, rootOfUnity(n))
}
