package timber

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"time"
)

// Logger formats events with the glog prefix and writes them, one line
// per event, to a single destination. The zero-value options give a
// stderr logger at InfoLevel; construct with New.
//
// A Logger adds no locking of its own: line atomicity is whatever the
// destination's Write provides, and the threshold is expected to be set
// once at startup.
type Logger struct {
	out io.Writer
	min Severity
	now func() time.Time
	pid int
}

// New creates a Logger. By default it writes to stderr, reports the
// current process id, and suppresses events below InfoLevel.
func New(opts ...Option) *Logger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Logger{out: o.out, min: o.min, now: o.now, pid: o.pid}
}

// std is the process-wide logger behind the package-level functions.
var std = New()

// Default returns the process-wide logger used by the package-level
// functions.
func Default() *Logger { return std }

// SetOutput redirects the logger's output to w.
func (l *Logger) SetOutput(w io.Writer) { l.out = w }

// Level returns the current minimum severity.
func (l *Logger) Level() Severity { return l.min }

// SetLevel sets the minimum severity that will be emitted, then logs a
// DEBUG confirmation which is itself subject to the new threshold.
func (l *Logger) SetLevel(s Severity) {
	l.min = s
	l.log(2, DebugLevel, "Log level set to %v", []any{s})
}

// Log emits a message at an arbitrary severity.
func (l *Logger) Log(s Severity, format string, args ...any) {
	l.log(2, s, format, args)
}

// Debug emits a DEBUG message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(2, DebugLevel, format, args)
}

// Info emits an INFO message.
func (l *Logger) Info(format string, args ...any) {
	l.log(2, InfoLevel, format, args)
}

// Warning emits a WARNING message.
func (l *Logger) Warning(format string, args ...any) {
	l.log(2, WarningLevel, format, args)
}

// Warn is an alias for Warning.
func (l *Logger) Warn(format string, args ...any) {
	l.log(2, WarningLevel, format, args)
}

// Error emits an ERROR message.
func (l *Logger) Error(format string, args ...any) {
	l.log(2, ErrorLevel, format, args)
}

// Fatal emits a FATAL message. It does not terminate the process; the
// check helpers are the fail-fast path.
func (l *Logger) Fatal(format string, args ...any) {
	l.log(2, FatalLevel, format, args)
}

// log drops the event if below threshold, attributes it to the caller
// calldepth frames up (runtime.Caller semantics, counted from log), and
// emits it.
func (l *Logger) log(calldepth int, s Severity, format string, args []any) {
	if s < l.min {
		return
	}
	file, line := "???", 0
	if _, f, n, ok := runtime.Caller(calldepth); ok {
		file, line = filepath.Base(f), n
	}
	l.emit(s, file, line, formatMessage(format, args...))
}

// emit formats and writes one event unconditionally. The whole line is
// handed to the destination in a single Write.
func (l *Logger) emit(s Severity, file string, line int, msg string) {
	e := Event{
		Severity: s,
		Time:     l.now(),
		PID:      l.pid,
		File:     file,
		Line:     line,
		Message:  msg,
	}
	fmt.Fprintln(l.out, FormatEvent(e))
}

// Debug emits a DEBUG message through the process-wide logger.
func Debug(format string, args ...any) {
	std.log(2, DebugLevel, format, args)
}

// Info emits an INFO message through the process-wide logger.
func Info(format string, args ...any) {
	std.log(2, InfoLevel, format, args)
}

// Warning emits a WARNING message through the process-wide logger.
func Warning(format string, args ...any) {
	std.log(2, WarningLevel, format, args)
}

// Warn is an alias for Warning.
func Warn(format string, args ...any) {
	std.log(2, WarningLevel, format, args)
}

// Error emits an ERROR message through the process-wide logger.
func Error(format string, args ...any) {
	std.log(2, ErrorLevel, format, args)
}

// Fatal emits a FATAL message through the process-wide logger. It does
// not terminate the process.
func Fatal(format string, args ...any) {
	std.log(2, FatalLevel, format, args)
}

// Log emits a message at an arbitrary severity through the process-wide
// logger.
func Log(s Severity, format string, args ...any) {
	std.log(2, s, format, args)
}

// Level returns the process-wide logger's threshold.
func Level() Severity { return std.Level() }

// SetLevel sets the process-wide threshold and keeps the registered
// --verbosity flag value in sync, so programmatic control and flag
// control agree.
func SetLevel(s Severity) {
	setVerbosityFlag(s)
	std.SetLevel(s)
}
