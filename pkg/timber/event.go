package timber

import "time"

// Event is one log record before formatting. Events are built per call
// to a leveled function, consumed once by FormatEvent, and never retained.
type Event struct {
	Severity Severity
	Time     time.Time // wall clock; sub-second precision used to microseconds
	PID      int       // 0 when the process id is unavailable
	File     string    // basename of the source file at the call site
	Line     int
	Message  string // rendered message text
}
