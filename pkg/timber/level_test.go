package timber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{Severity(42), "UNKNOWN"},
		{Severity(-1), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sev.String())
	}
}

func TestSeverityLetter(t *testing.T) {
	tests := []struct {
		sev  Severity
		want byte
	}{
		{DebugLevel, 'D'},
		{InfoLevel, 'I'},
		{WarningLevel, 'W'},
		{ErrorLevel, 'E'},
		{FatalLevel, 'F'},
		{Severity(42), '?'},
		{Severity(-1), '?'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sev.Letter())
	}
}

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, DebugLevel < InfoLevel)
	assert.True(t, InfoLevel < WarningLevel)
	assert.True(t, WarningLevel < ErrorLevel)
	assert.True(t, ErrorLevel < FatalLevel)
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarningLevel},
		{"warning", WarningLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"WARNING", WarningLevel},
		{"Error", ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		require.NoError(t, err, "ParseSeverity(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseSeverity(%q)", tt.in)
	}
}

func TestParseSeverityUnknown(t *testing.T) {
	_, err := ParseSeverity("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestSeverityFromLetter(t *testing.T) {
	for s := DebugLevel; s <= FatalLevel; s++ {
		got, ok := severityFromLetter(s.Letter())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := severityFromLetter('X')
	assert.False(t, ok)
}
