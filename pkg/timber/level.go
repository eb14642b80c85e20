package timber

import (
	"fmt"
	"strings"
)

// Severity is the ordered importance of a log event.
// Events below a logger's threshold are suppressed before formatting.
type Severity int

const (
	DebugLevel Severity = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	FatalLevel
)

var severityNames = [...]string{"DEBUG", "INFO", "WARNING", "ERROR", "FATAL"}

// String returns the severity name, or "UNKNOWN" outside the known range.
func (s Severity) String() string {
	if s >= DebugLevel && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Letter returns the single-character prefix code for s.
// Severities outside the known range render as '?'.
func (s Severity) Letter() byte {
	if s >= DebugLevel && int(s) < len(severityNames) {
		return severityNames[s][0]
	}
	return '?'
}

// ParseSeverity converts a level name to a Severity. Matching is
// case-insensitive; "warn" is accepted as an alias for "warning".
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown severity %q", name)
}

// severityFromLetter is the inverse of Letter for the known severities.
func severityFromLetter(b byte) (Severity, bool) {
	for s := DebugLevel; s <= FatalLevel; s++ {
		if s.Letter() == b {
			return s, true
		}
	}
	return InfoLevel, false
}
