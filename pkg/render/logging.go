package render

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger receives renderer and viewer diagnostics.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger prints timestamped "[prefix] LEVEL: message" lines.
// Debug and info go to one stream, warnings and errors to the other.
type DefaultLogger struct {
	debug atomic.Bool
	info  *log.Logger
	alert *log.Logger
}

// NewDefaultLogger logs to stdout and stderr.
func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewLoggerTo(os.Stdout, os.Stderr, prefix, debug)
}

// NewLoggerTo logs to the given writers.
func NewLoggerTo(out, errOut io.Writer, prefix string, debug bool) *DefaultLogger {
	if prefix != "" {
		prefix = "[" + prefix + "] "
	}
	flags := log.LstdFlags | log.Lmicroseconds | log.Lmsgprefix
	l := &DefaultLogger{
		info:  log.New(out, prefix, flags),
		alert: log.New(errOut, prefix, flags),
	}
	l.debug.Store(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool    { return l.debug.Load() }
func (l *DefaultLogger) SetDebug(enabled bool) { l.debug.Store(enabled) }

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.debug.Load() {
		emit(l.info, "DEBUG", format, args)
	}
}

func (l *DefaultLogger) Infof(format string, args ...any)  { emit(l.info, "INFO", format, args) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { emit(l.alert, "WARN", format, args) }
func (l *DefaultLogger) Errorf(format string, args ...any) { emit(l.alert, "ERROR", format, args) }

func emit(to *log.Logger, level, format string, args []any) {
	to.Print(level + ": " + fmt.Sprintf(format, args...))
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) DebugEnabled() bool    { return false }
func (nopLogger) SetDebug(bool)         {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
