package fft

import "math"

// Scale multiplies every element of data by s in place.
func Scale(data []Complex, s float64) {
	if s == 1 {
		return
	}

	for i := range data {
		data[i] = data[i].Scale(s)
	}
}

// Normalize applies the unitary 1/sqrt(n) scaling in place.
func Normalize(data []Complex) {
	if len(data) == 0 {
		return
	}

	Scale(data, 1/math.Sqrt(float64(len(data))))
}
