package fft

// Scratch computes the unnormalized DFT of data in place using one scratch
// buffer of at least len(data) elements and no further allocation.
//
// The input is copied to scratch and read back through strided views, so
// each level sees exactly the even/odd subsequences of Recursive and the
// butterflies run in the same order with the same operands.
func Scratch(data, scratch []Complex) {
	n := len(data)
	if n <= 1 {
		return
	}

	src := scratch[:n]
	copy(src, data)
	strided(data, src, 1)
}

// strided writes the transform of src[0], src[stride], ... into dst.
func strided(dst, src []Complex, stride int) {
	n := len(dst)
	if n == 1 {
		dst[0] = src[0]
		return
	}

	half := n / 2
	strided(dst[:half], src, 2*stride)
	strided(dst[half:], src[stride:], 2*stride)

	butterfly(dst, dst[:half], dst[half:], rootOfUnity(n))
}
