package timber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testEvent() Event {
	return Event{
		Severity: ErrorLevel,
		Time:     time.Date(2025, time.September, 24, 22, 19, 15, 123456000, time.Local),
		PID:      19552,
		File:     "server.go",
		Line:     87,
		Message:  "connection refused",
	}
}

func TestFormatEvent(t *testing.T) {
	got := FormatEvent(testEvent())
	assert.Equal(t, "E0924 22:19:15.123456 19552 server.go:87] connection refused", got)
}

func TestFormatEventZeroPadding(t *testing.T) {
	e := testEvent()
	e.Time = time.Date(2025, time.January, 2, 3, 4, 5, 6000, time.Local)
	got := FormatEvent(e)
	assert.Equal(t, "E0102 03:04:05.000006 19552 server.go:87] connection refused", got)
}

func TestFormatEventUnknownSeverity(t *testing.T) {
	e := testEvent()
	e.Severity = Severity(42)
	got := FormatEvent(e)
	assert.Equal(t, byte('?'), got[0])
}

func TestFormatEventMissingPID(t *testing.T) {
	e := testEvent()
	e.PID = 0
	got := FormatEvent(e)
	assert.Contains(t, got, " ????? server.go:87] ")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"no args", "plain text", nil, "plain text"},
		{"interpolated", "got %d of %s", []any{3, "them"}, "got 3 of them"},
		{"verb without args is verbatim", "50%d off", nil, "50%d off"},
		{"extra args fall back", "no verbs", []any{1}, "no verbs"},
		{"wrong verb type falls back", "count %d", []any{"three"}, "count %d"},
		{"missing args fall back", "%s and %s", []any{"one"}, "%s and %s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMessage(tt.format, tt.args...))
		})
	}
}

func TestFormatMessageLiteralMarker(t *testing.T) {
	// A raw string already containing the fmt error marker must not
	// defeat interpolation.
	got := formatMessage("odd %%!marker %d", 7)
	assert.Equal(t, "odd %!marker 7", got)
}
