package timber

import (
	"io"
	"os"
	"time"
)

type options struct {
	out io.Writer
	min Severity
	now func() time.Time
	pid int
}

// Option configures a Logger.
type Option func(*options)

// WithWriter directs output to w instead of stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithThreshold sets the initial minimum severity. Default: InfoLevel.
func WithThreshold(s Severity) Option {
	return func(o *options) {
		o.min = s
	}
}

// WithClock overrides the wall-clock source. Useful in tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithPID overrides the reported process id. 0 renders as "?????".
func WithPID(pid int) Option {
	return func(o *options) {
		o.pid = pid
	}
}

func defaultOptions() options {
	return options{
		out: os.Stderr,
		min: InfoLevel,
		now: time.Now,
		pid: os.Getpid(),
	}
}
