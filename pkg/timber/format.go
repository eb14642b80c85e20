package timber

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEvent renders e as a single glog-style line:
//
//	E0924 22:19:15.123456 19552 server.go:87] connection refused
//
// Timestamp fields come from the event time in local time. A zero PID
// renders as "?????". The line is not newline-terminated; the emitter
// appends that.
func FormatEvent(e Event) string {
	t := e.Time.Local()
	pid := "?????"
	if e.PID != 0 {
		pid = strconv.Itoa(e.PID)
	}
	return fmt.Sprintf("%c%02d%02d %02d:%02d:%02d.%06d %s %s:%d] %s",
		e.Severity.Letter(),
		int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000,
		pid, e.File, e.Line, e.Message)
}

// formatMessage interpolates args into format. A bad format string never
// fails the log call: when interpolation produces a fmt error marker that
// the raw string itself did not contain, the raw string is returned
// unformatted instead.
func formatMessage(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	s := fmt.Sprintf(format, args...)
	if strings.Contains(s, "%!") && !strings.Contains(format, "%!") {
		return format
	}
	return s
}
