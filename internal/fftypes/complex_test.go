package fftypes

import (
	"math"
	"testing"
)

func TestComplexArithmetic(t *testing.T) {
	t.Parallel()

	a := NewComplex(1.5, -2)
	b := NewComplex(-0.5, 4)

	tests := []struct {
		name string
		got  Complex
		want Complex
	}{
		{name: "add", got: a.Add(b), want: Complex{1, 2}},
		{name: "sub", got: a.Sub(b), want: Complex{2, -6}},
		// (1.5 - 2i)(-0.5 + 4i) = -0.75 + 6i + 1i + 8 = 7.25 + 7i
		{name: "mul", got: a.Mul(b), want: Complex{7.25, 7}},
		{name: "scale", got: a.Scale(-2), want: Complex{-3, 4}},
		{name: "mul identity", got: a.Mul(Complex{1, 0}), want: a},
		{name: "mul by i", got: a.Mul(Complex{0, 1}), want: Complex{2, 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	// Operands are values; nothing above may have changed them.
	if a != (Complex{1.5, -2}) || b != (Complex{-0.5, 4}) {
		t.Errorf("operands modified: a=%v b=%v", a, b)
	}
}

func TestComplexMulMatchesBuiltin(t *testing.T) {
	t.Parallel()

	pairs := [][2]complex128{
		{1 + 2i, 3 - 4i},
		{-0.25 + 0.5i, 0.125 + 8i},
		{complex(math.Cos(0.3), math.Sin(0.3)), complex(math.Cos(-1.1), math.Sin(-1.1))},
	}

	for _, p := range pairs {
		got := FromComplex128(p[0]).Mul(FromComplex128(p[1])).Complex128()
		want := p[0] * p[1]

		if math.Abs(real(got)-real(want)) > 1e-15 || math.Abs(imag(got)-imag(want)) > 1e-15 {
			t.Errorf("%v * %v = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestComplexMagnitude(t *testing.T) {
	t.Parallel()

	c := NewComplex(3, 4)
	if c.Abs2() != 25 {
		t.Errorf("Abs2() = %v, want 25", c.Abs2())
	}

	if c.Abs() != 5 {
		t.Errorf("Abs() = %v, want 5", c.Abs())
	}
}

func BenchmarkComplexMul(b *testing.B) {
	w := NewComplex(1, 0)
	wn := NewComplex(math.Cos(-0.01), math.Sin(-0.01))

	for range b.N {
		w = w.Mul(wn)
	}

	if w.Abs() == 0 {
		b.Fatal("twiddle collapsed to zero")
	}
}
