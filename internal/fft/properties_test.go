package fft

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/ctfft/internal/fftypes"
)

func TestIdentityOnLengthOne(t *testing.T) {
	t.Parallel()

	x := Complex{Real: -3.25, Imag: 7.5}

	for _, s := range fftypes.Strategies() {
		got := forward(t, []Complex{x}, s)
		if got[0] != x {
			t.Errorf("%s: transform([x]) = %v, want %v", s, got[0], x)
		}
	}
}

func TestKnownSmallCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []Complex
		want []Complex
	}{
		{
			name: "dc n=4",
			in:   []Complex{{Real: 1}, {Real: 1}, {Real: 1}, {Real: 1}},
			want: []Complex{{Real: 2}, {}, {}, {}},
		},
		{
			name: "impulse n=2",
			in:   []Complex{{Real: 1}, {}},
			want: []Complex{{Real: 1 / math.Sqrt2}, {Real: 1 / math.Sqrt2}},
		},
		{
			name: "alternating n=4",
			in:   []Complex{{Real: 1}, {Real: -1}, {Real: 1}, {Real: -1}},
			want: []Complex{{}, {}, {Real: 2}, {}},
		},
	}

	for _, tt := range tests {
		for _, s := range fftypes.Strategies() {
			t.Run(tt.name+"/"+s.String(), func(t *testing.T) {
				t.Parallel()

				assertSliceClose(t, forward(t, tt.in, s), tt.want, 1e-12)
			})
		}
	}
}

func TestLinearity(t *testing.T) {
	t.Parallel()

	a := Complex{Real: 2.5, Imag: 1.3}
	b := Complex{Real: -1.7, Imag: 0.8}

	for _, n := range []int{8, 16, 64, 256, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			x := randomSignal(n, 12345)
			y := randomSignal(n, 67890)

			combined := make([]Complex, n)
			for i := range n {
				combined[i] = a.Mul(x[i]).Add(b.Mul(y[i]))
			}

			fx := forward(t, x, fftypes.StrategyRecursive)
			fy := forward(t, y, fftypes.StrategyRecursive)

			want := make([]Complex, n)
			for i := range n {
				want[i] = a.Mul(fx[i]).Add(b.Mul(fy[i]))
			}

			assertSliceClose(t, forward(t, combined, fftypes.StrategyRecursive), want, testTol)
		})
	}
}

func TestParseval(t *testing.T) {
	t.Parallel()

	energy := func(x []Complex) float64 {
		var e float64
		for _, v := range x {
			e += v.Abs2()
		}

		return e
	}

	for _, n := range []int{2, 8, 64, 1024, 1 << 14} {
		for _, s := range fftypes.Strategies() {
			t.Run(fmt.Sprintf("n=%d/%s", n, s), func(t *testing.T) {
				t.Parallel()

				src := randomSignal(n, 11111)
				before := energy(src)
				after := energy(forward(t, src, s))

				if rel := math.Abs(before-after) / before; rel > 1e-10 {
					t.Errorf("energy %v -> %v (relative error %e)", before, after, rel)
				}
			})
		}
	}
}

// TestNormalizationAppliedOnce checks the DC bin of a constant signal, which
// is n without scaling and sqrt(n) with exactly one 1/sqrt(n) pass.
func TestNormalizationAppliedOnce(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 16, 256} {
		src := make([]Complex, n)
		for i := range src {
			src[i] = Complex{Real: 1}
		}

		for _, s := range fftypes.Strategies() {
			got := forward(t, src, s)
			if want := math.Sqrt(float64(n)); math.Abs(got[0].Real-want) > 1e-12 {
				t.Errorf("n=%d %s: DC bin = %v, want %v", n, s, got[0].Real, want)
			}
		}
	}
}

func TestShiftTheorem(t *testing.T) {
	t.Parallel()

	n := 64
	x := randomSignal(n, 77777)

	for _, shift := range []int{1, 2, 3} {
		y := make([]Complex, n)
		for k := range n {
			y[k] = x[(k-shift+n)%n]
		}

		fx := forward(t, x, fftypes.StrategyRecursive)
		fy := forward(t, y, fftypes.StrategyRecursive)

		want := make([]Complex, n)
		for k := range n {
			phase := -2 * math.Pi * float64(k*shift) / float64(n)
			want[k] = fx[k].Mul(Complex{Real: math.Cos(phase), Imag: math.Sin(phase)})
		}

		assertSliceClose(t, fy, want, testTol)
	}
}

func TestRealInputSymmetry(t *testing.T) {
	t.Parallel()

	n := 32
	src := make([]Complex, n)

	for i := range src {
		src[i] = Complex{Real: float64(i)}
	}

	dst := forward(t, src, fftypes.StrategyRecursive)

	for k := 1; k < n/2; k++ {
		conj := Complex{Real: dst[n-k].Real, Imag: -dst[n-k].Imag}
		if math.Abs(dst[k].Real-conj.Real) > testTol || math.Abs(dst[k].Imag-conj.Imag) > testTol {
			t.Errorf("X[%d] = %v, conj(X[%d]) = %v", k, dst[k], n-k, conj)
		}
	}
}
