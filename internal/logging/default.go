package logging

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Level label styles. lipgloss drops the colors when the output is not a
// terminal.
var (
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
)

// DefaultLogger writes one line per entry:
//
//	2006-01-02T15:04:05Z07:00 [LEVEL] msg: err key=value ...
//
// Debug and Info go to out, Warn and Error to errOut.
type DefaultLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	errOut io.Writer
	level  *Level
	fields Fields
	styled bool
	now    func() time.Time
}

// NewDefaultLogger logs everything to stderr, leaving stdout to the command
// output. Colors are used only when stderr is a terminal.
func NewDefaultLogger() *DefaultLogger {
	return NewLogger(os.Stderr, os.Stderr, IsTerminal(os.Stderr))
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewLogger creates a logger on the given writers. styled enables lipgloss
// colors for level labels.
func NewLogger(out, errOut io.Writer, styled bool) *DefaultLogger {
	level := InfoLevel

	return &DefaultLogger{
		mu:     &sync.Mutex{},
		out:    out,
		errOut: errOut,
		level:  &level,
		fields: Fields{},
		styled: styled,
		now:    time.Now,
	}
}

func (d *DefaultLogger) format(level Level, err error, msg string, fields []Fields) string {
	all := maps.Clone(d.fields)
	for _, f := range fields {
		maps.Copy(all, f)
	}

	var b strings.Builder

	b.WriteString(d.now().Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(d.label(level))
	b.WriteByte(' ')
	b.WriteString(msg)

	if err != nil {
		b.WriteString(": ")
		b.WriteString(err.Error())
	}

	for _, k := range slices.Sorted(maps.Keys(all)) {
		kv := fmt.Sprintf("%s=%v", k, all[k])
		if d.styled {
			kv = fieldStyle.Render(kv)
		}

		b.WriteByte(' ')
		b.WriteString(kv)
	}

	return b.String()
}

func (d *DefaultLogger) label(level Level) string {
	label := "[" + level.String() + "]"
	if !d.styled {
		return label
	}

	switch level {
	case DebugLevel:
		return debugStyle.Render(label)
	case InfoLevel:
		return infoStyle.Render(label)
	case WarnLevel:
		return warnStyle.Render(label)
	default:
		return errorStyle.Render(label)
	}
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields []Fields) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if level < *d.level {
		return
	}

	w := d.out
	if level >= WarnLevel {
		w = d.errOut
	}

	fmt.Fprintln(w, d.format(level, err, msg, fields))
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields)
}

// WithFields returns a child logger sharing writers and level.
func (d *DefaultLogger) WithFields(fields Fields) Logger {
	child := *d
	child.fields = maps.Clone(d.fields)
	maps.Copy(child.fields, fields)

	return &child
}

// SetLevel changes the level for this logger and every child.
func (d *DefaultLogger) SetLevel(level Level) {
	d.mu.Lock()
	defer d.mu.Unlock()

	*d.level = level
}
