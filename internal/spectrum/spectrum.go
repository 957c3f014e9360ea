// Package spectrum summarizes and plots transformed signals.
package spectrum

import (
	"cmp"
	"slices"

	"github.com/guptarohit/asciigraph"

	"github.com/cwbudde/ctfft"
)

// Peak is one spectral bin.
type Peak struct {
	Bin       int
	Magnitude float64
}

// Magnitudes returns |X[k]| for every bin.
func Magnitudes(s ctfft.Signal) []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Abs()
	}

	return out
}

// Peaks returns the k largest bins, strongest first. Ties keep the lower
// bin first.
func Peaks(s ctfft.Signal, k int) []Peak {
	if k <= 0 || len(s) == 0 {
		return nil
	}

	peaks := make([]Peak, len(s))
	for i, c := range s {
		peaks[i] = Peak{Bin: i, Magnitude: c.Abs()}
	}

	slices.SortStableFunc(peaks, func(a, b Peak) int {
		return cmp.Compare(b.Magnitude, a.Magnitude)
	})

	return peaks[:min(k, len(peaks))]
}

// Plot renders the magnitude spectrum as an ASCII chart. Non-positive width
// or height lets asciigraph pick.
func Plot(s ctfft.Signal, width, height int, caption string) string {
	if len(s) == 0 {
		return ""
	}

	var opts []asciigraph.Option
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}

	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}

	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}

	return asciigraph.Plot(Magnitudes(s), opts...)
}
