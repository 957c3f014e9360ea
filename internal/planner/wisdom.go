// Package planner resolves which transform strategy a plan uses and keeps the
// wisdom cache of measured per-size winners.
package planner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cwbudde/ctfft/internal/fftypes"
	m "github.com/cwbudde/ctfft/internal/math"
)

// ErrMalformedWisdom is returned when a wisdom file cannot be parsed.
var ErrMalformedWisdom = errors.New("ctfft: malformed wisdom")

// WisdomEntry records the fastest strategy measured for one transform size.
type WisdomEntry struct {
	Size      int
	Strategy  fftypes.Strategy
	NsPerOp   float64
	Timestamp time.Time
}

// Wisdom is a concurrency-safe cache of WisdomEntry values keyed by size.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[int]WisdomEntry
}

// DefaultWisdom is consulted by plans that do not carry their own cache.
var DefaultWisdom = NewWisdom()

// NewWisdom returns an empty cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[int]WisdomEntry)}
}

// Store sets the entry for e.Size, replacing any previous one.
func (w *Wisdom) Store(e WisdomEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[e.Size] = e
}

// Record stores e only if no faster entry exists for its size.
// It reports whether e was stored.
func (w *Wisdom) Record(e WisdomEntry) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if old, ok := w.entries[e.Size]; ok && old.NsPerOp <= e.NsPerOp {
		return false
	}

	w.entries[e.Size] = e

	return true
}

// Lookup returns the entry for size.
func (w *Wisdom) Lookup(size int) (WisdomEntry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	e, ok := w.entries[size]

	return e, ok
}

// Len returns the number of entries.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Clear removes every entry.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	clear(w.entries)
}

// Entries returns a snapshot sorted by size.
func (w *Wisdom) Entries() []WisdomEntry {
	w.mu.RLock()
	out := make([]WisdomEntry, 0, len(w.entries))

	for _, e := range w.entries {
		out = append(out, e)
	}
	w.mu.RUnlock()

	slices.SortFunc(out, func(a, b WisdomEntry) int { return a.Size - b.Size })

	return out
}

// Export writes one line per entry: "<size> <strategy> <ns_per_op> <unix_ts>".
func (w *Wisdom) Export(dst io.Writer) error {
	bw := bufio.NewWriter(dst)

	if _, err := fmt.Fprintln(bw, "# ctfft wisdom: size strategy ns_per_op unix_ts"); err != nil {
		return err
	}

	for _, e := range w.Entries() {
		_, err := fmt.Fprintf(bw, "%d %s %s %d\n",
			e.Size, e.Strategy, strconv.FormatFloat(e.NsPerOp, 'f', -1, 64), e.Timestamp.Unix())
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Import merges entries read from src into the cache. Blank lines and lines
// starting with '#' are skipped. On a malformed line nothing is merged.
func (w *Wisdom) Import(src io.Reader) error {
	var parsed []WisdomEntry

	sc := bufio.NewScanner(src)
	line := 0

	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		e, err := parseEntry(text)
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrMalformedWisdom, line, err)
		}

		parsed = append(parsed, e)
	}

	if err := sc.Err(); err != nil {
		return err
	}

	for _, e := range parsed {
		w.Store(e)
	}

	return nil
}

func parseEntry(text string) (WisdomEntry, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return WisdomEntry{}, fmt.Errorf("want 4 fields, got %d", len(fields))
	}

	size, err := strconv.Atoi(fields[0])
	if err != nil || !m.IsPowerOf2(size) {
		return WisdomEntry{}, fmt.Errorf("bad size %q", fields[0])
	}

	strategy, ok := fftypes.ParseStrategy(fields[1])
	if !ok || strategy == fftypes.StrategyAuto {
		return WisdomEntry{}, fmt.Errorf("bad strategy %q", fields[1])
	}

	ns, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || ns < 0 {
		return WisdomEntry{}, fmt.Errorf("bad ns_per_op %q", fields[2])
	}

	ts, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("bad timestamp %q", fields[3])
	}

	return WisdomEntry{
		Size:      size,
		Strategy:  strategy,
		NsPerOp:   ns,
		Timestamp: time.Unix(ts, 0),
	}, nil
}
