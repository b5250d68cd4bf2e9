// Package logger is the structured logging facade used across lodestone. It
// wraps zerolog and tolerates nil receivers so optional loggers need no
// guarding at call sites.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// HumanReadable switches from JSON lines to the zerolog console format.
	HumanReadable bool
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

type Logger struct {
	zl zerolog.Logger
}

func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return level, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// OpenFile opens path for appending, creating it and its directory. An empty
// path gives a writer that discards and closes without error.
func OpenFile(path string) (io.WriteCloser, error) {
	if strings.TrimSpace(path) == "" {
		return discard{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Close() error                { return nil }

// With returns a child logger that adds key to every entry.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithFields is With for several keys, added in key order.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ctx := l.zl.With()
	for _, k := range keys {
		ctx = ctx.Interface(k, fields[k])
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Info(msg string)  { l.write(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.write(zerolog.WarnLevel, nil, msg) }

// Error logs msg at error level with err attached when non-nil.
func (l *Logger) Error(err error, msg string) { l.write(zerolog.ErrorLevel, err, msg) }

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.zl.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
