package ctfft

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/ctfft/internal/planner"
)

// Wisdom caches the fastest measured strategy per transform size.
// StrategyAuto plans consult it; the fftbench command fills it.
type Wisdom = planner.Wisdom

// WisdomEntry is one measured (size, strategy) result.
type WisdomEntry = planner.WisdomEntry

// NewWisdom creates an empty wisdom cache.
func NewWisdom() *Wisdom {
	return planner.NewWisdom()
}

// DefaultWisdom returns the process-wide cache used by plans without
// WithWisdom.
func DefaultWisdom() *Wisdom {
	return planner.DefaultWisdom
}

// ImportWisdom merges wisdom from a file written by ExportWisdom into the
// default cache.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := planner.DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ImportWisdomFromString merges wisdom text into the default cache.
func ImportWisdomFromString(data string) error {
	if err := planner.DefaultWisdom.Import(strings.NewReader(data)); err != nil {
		return fmt.Errorf("failed to import wisdom from string: %w", err)
	}

	return nil
}

// ExportWisdom saves the default cache to a file.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, planner.DefaultWisdom)
}

// ExportWisdomTo saves a specific cache to a file.
func ExportWisdomTo(filename string, wisdom *Wisdom) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	if err := wisdom.Export(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}
