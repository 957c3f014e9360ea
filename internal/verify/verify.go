// Package verify reads, writes and compares reference transform files.
//
// A reference file holds one "real,imag" pair per line in plain decimal
// notation; blank lines are ignored.
package verify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/ctfft"
	m "github.com/cwbudde/ctfft/internal/math"
)

// DefaultTolerance is the per-component absolute error accepted by Compare.
const DefaultTolerance = m.Tolerance

var (
	// ErrVerificationFailed is wrapped by every MismatchError.
	ErrVerificationFailed = errors.New("verify: verification failed")

	// ErrMalformedReference is returned for lines that are not "real,imag".
	ErrMalformedReference = errors.New("verify: malformed reference line")
)

// MismatchError reports the first element outside the tolerance.
type MismatchError struct {
	Index    int
	Expected ctfft.Complex
	Got      ctfft.Complex
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("verification failed at index %d: expected %s, got %s",
		e.Index, FormatComplex(e.Expected), FormatComplex(e.Got))
}

func (e *MismatchError) Unwrap() error {
	return ErrVerificationFailed
}

// Read parses a reference signal.
func Read(r io.Reader) (ctfft.Signal, error) {
	var sig ctfft.Signal

	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		c, err := ParseComplex(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		sig = append(sig, c)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return sig, nil
}

// ReadFile parses the reference signal stored at path.
func ReadFile(path string) (ctfft.Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}

	defer f.Close()

	sig, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sig, nil
}

// ParseComplex parses one "real,imag" pair.
func ParseComplex(text string) (ctfft.Complex, error) {
	reText, imText, ok := strings.Cut(text, ",")
	if !ok {
		return ctfft.Complex{}, fmt.Errorf("%w: %q", ErrMalformedReference, text)
	}

	re, err := strconv.ParseFloat(strings.TrimSpace(reText), 64)
	if err != nil {
		return ctfft.Complex{}, fmt.Errorf("%w: %q", ErrMalformedReference, text)
	}

	im, err := strconv.ParseFloat(strings.TrimSpace(imText), 64)
	if err != nil {
		return ctfft.Complex{}, fmt.Errorf("%w: %q", ErrMalformedReference, text)
	}

	return ctfft.NewComplex(re, im), nil
}

// FormatComplex renders c as "real,imag" with the shortest representation
// that parses back to the same values.
func FormatComplex(c ctfft.Complex) string {
	return strconv.FormatFloat(c.Real, 'g', -1, 64) + "," + strconv.FormatFloat(c.Imag, 'g', -1, 64)
}

// Write stores sig in reference format.
func Write(w io.Writer, sig ctfft.Signal) error {
	bw := bufio.NewWriter(w)

	for _, c := range sig {
		if _, err := bw.WriteString(FormatComplex(c) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile stores sig at path, replacing any existing file.
func WriteFile(path string, sig ctfft.Signal) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create reference file: %w", err)
	}

	if err := Write(f, sig); err != nil {
		f.Close()
		return fmt.Errorf("failed to write reference file: %w", err)
	}

	return f.Close()
}

// Compare checks got against want element by element. Both components must
// be within tol (DefaultTolerance when tol <= 0). Only the elements present
// in want are checked; a want longer than got fails with
// ctfft.ErrLengthMismatch.
func Compare(got, want ctfft.Signal, tol float64) error {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	if len(want) > len(got) {
		return fmt.Errorf("%w: reference has %d values, signal has %d",
			ctfft.ErrLengthMismatch, len(want), len(got))
	}

	for i, w := range want {
		g := got[i]
		if !(math.Abs(g.Real-w.Real) <= tol) || !(math.Abs(g.Imag-w.Imag) <= tol) {
			return &MismatchError{Index: i, Expected: w, Got: g}
		}
	}

	return nil
}
