// Package logger prints progress messages of a run to the console.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Level selects how much a Logger prints.
type Level int

const (
	// LevelQuiet prints errors only.
	LevelQuiet Level = iota
	// LevelNormal prints progress messages and warnings.
	LevelNormal
	// LevelVerbose also prints debug messages and fetched values.
	LevelVerbose
)

// Logger writes styled, leveled messages. It is safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	pretty bool

	accent lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
}

// New returns a logger writing to out. pretty indents values printed by Data.
func New(out io.Writer, level Level, pretty bool) *Logger {
	r := lipgloss.NewRenderer(out)
	return &Logger{
		out:    out,
		level:  level,
		pretty: pretty,
		accent: r.NewStyle().Foreground(lipgloss.Color("99")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("244")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("214")),
		err:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Discard returns a logger that prints nothing.
func Discard() *Logger {
	return New(io.Discard, LevelQuiet, false)
}

// Level reports the logger's level.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) print(min Level, style lipgloss.Style, prefix, format string, args []any) {
	if l.level < min {
		return
	}
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, style.Render(prefix+msg))
}

// Info prints a progress message.
func (l *Logger) Info(format string, args ...any) {
	l.print(LevelNormal, l.accent, "", format, args)
}

// Debug prints a message in verbose mode only.
func (l *Logger) Debug(format string, args ...any) {
	l.print(LevelVerbose, l.muted, "", format, args)
}

// Warn prints a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.print(LevelNormal, l.warn, "warning: ", format, args)
}

// Error prints an error, even in quiet mode.
func (l *Logger) Error(format string, args ...any) {
	l.print(LevelQuiet, l.err, "error: ", format, args)
}

// Data prints message followed by v as JSON, in verbose mode only.
func (l *Logger) Data(message string, v any) {
	if l.level < LevelVerbose {
		return
	}

	var (
		data []byte
		err  error
	)
	if l.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		data = []byte(fmt.Sprintf("%+v", v))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, l.muted.Render(message))
	fmt.Fprintln(l.out, string(data))
}
