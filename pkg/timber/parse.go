package timber

import (
	"regexp"
	"strconv"
)

// PrefixRE matches the line prefix produced by FormatEvent. The named
// groups expose every prefix field; the message is the remainder of the
// line after the match.
var PrefixRE = regexp.MustCompile(
	`^(?P<severity>[DIWEF])` +
		`(?P<month>\d{2})(?P<day>\d{2}) ` +
		`(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})` +
		`\.(?P<microsecond>\d{6})\s+` +
		`(?P<pid>-?\d+)\s` +
		`(?P<file>[A-Za-z_<][\w._<>-]+):(?P<line>\d+)` +
		`\] `)

// Prefix is the parsed form of a formatted log line.
type Prefix struct {
	Severity    Severity
	Month, Day  int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
	PID         int
	File        string
	Line        int
	Message     string
}

// ParsePrefix parses a line produced by FormatEvent. The second return
// value is false when the line does not match PrefixRE.
func ParsePrefix(line string) (Prefix, bool) {
	m := PrefixRE.FindStringSubmatch(line)
	if m == nil {
		return Prefix{}, false
	}
	get := func(name string) string {
		return m[PrefixRE.SubexpIndex(name)]
	}
	atoi := func(name string) int {
		n, _ := strconv.Atoi(get(name))
		return n
	}
	sev, ok := severityFromLetter(get("severity")[0])
	if !ok {
		return Prefix{}, false
	}
	return Prefix{
		Severity:    sev,
		Month:       atoi("month"),
		Day:         atoi("day"),
		Hour:        atoi("hour"),
		Minute:      atoi("minute"),
		Second:      atoi("second"),
		Microsecond: atoi("microsecond"),
		PID:         atoi("pid"),
		File:        get("file"),
		Line:        atoi("line"),
		Message:     line[len(m[0]):],
	}, true
}
