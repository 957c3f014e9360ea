package fft

import (
	"math"

	m "github.com/cwbudde/ctfft/internal/math"
)

// TwiddleTable returns exp(-2πik/n) for k = 0..n/2-1, each evaluated
// directly from its angle.
func TwiddleTable(n int) []Complex {
	if n < 2 {
		return nil
	}

	table := make([]Complex, n/2)
	for k := range table {
		ang := -m.TwoPi * float64(k) / float64(n)
		table[k] = Complex{Real: math.Cos(ang), Imag: math.Sin(ang)}
	}

	return table
}

// Table computes the unnormalized DFT of data in place with the recursion of
// Recursive, but reads twiddles from table (built by TwiddleTable(len(data)))
// instead of accumulating them. The output differs from Recursive by the
// rounding drift of the accumulated rotation, well under 1e-9 for n <= 2^22.
func Table(data, table []Complex) {
	tableRecursive(data, table, 1)
}

// tableRecursive transforms a node whose twiddles sit at table[i*stride].
func tableRecursive(data, table []Complex, stride int) {
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

	tableRecursive(even, table, 2*stride)
	tableRecursive(odd, table, 2*stride)

	for i := range half {
		p := even[i]
		q := table[i*stride].Mul(odd[i])
		data[i] = p.Add(q)
		data[i+half] = p.Sub(q)
	}
}
