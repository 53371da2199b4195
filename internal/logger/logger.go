// Package logger provides levelled, structured diagnostics for plume.
//
// Diagnostics go to stderr so they never mix with command output such as
// triangle rows or rendered config.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelSilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "silent", "off":
		return LevelSilent, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger provides structured logging with configurable levels
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithFields(fields ...Field) Logger
	SetLevel(level Level)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value any
}

// F is a convenience function for creating fields
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type streamLogger struct {
	mu     *sync.Mutex
	level  *Level
	out    io.Writer
	fields []Field
	now    func() time.Time
}

// New creates a logger writing entries at or above level to out.
// A nil out writes to stderr.
func New(level Level, out io.Writer) Logger {
	if out == nil {
		out = os.Stderr
	}
	return &streamLogger{
		mu:    &sync.Mutex{},
		level: &level,
		out:   out,
		now:   time.Now,
	}
}

// NewSilent creates a logger that outputs nothing
func NewSilent() Logger {
	return New(LevelSilent, io.Discard)
}

// SetLevel changes the minimum level for this logger and every logger
// derived from it with WithFields.
func (l *streamLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.level = level
}

// WithFields returns a child logger that adds fields to every entry.
func (l *streamLogger) WithFields(fields ...Field) Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)

	return &streamLogger{
		mu:     l.mu,
		level:  l.level,
		out:    l.out,
		fields: merged,
		now:    l.now,
	}
}

func (l *streamLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l *streamLogger) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l *streamLogger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l *streamLogger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

func (l *streamLogger) log(level Level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < *l.level {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", l.now().Format("2006-01-02 15:04:05"), level, msg)

	if len(l.fields)+len(fields) > 0 {
		b.WriteString(" |")
		for _, f := range l.fields {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
		for _, f := range fields {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.out, b.String())
}
