// Package timber is a small Google-style logging wrapper with inline
// invariant checks.
//
// Every line is written to stderr with a fixed, greppable prefix:
//
//	E0924 22:19:15.123456 19552 server.go:87] connection refused
//
// Splitting on spaces, the fields are the severity letter plus MMDD,
// HH:MM:SS.microseconds, the process id, and basename:line of the call
// site, followed by "] " and the message.
//
// Quick start:
//
//	timber.Info("listening on %s", addr)
//	timber.Warning("retrying in %v", backoff)
//
//	if err := timber.CheckGe(balance, 0); err != nil {
//	    return err
//	}
//
// The package-level functions share one process-wide logger. Code that
// needs its own destination or threshold can construct a handle with New
// and the With* options.
//
// Programs that want a --verbosity flag call RegisterFlags before parsing
// and Init afterwards:
//
//	timber.RegisterFlags(pflag.CommandLine)
//	pflag.Parse()
//	if err := timber.Init(); err != nil {
//	    ...
//	}
//
// The Check helpers mirror the C++ glog CHECK macros. Unlike a bare
// assertion they report the compared values, and on failure they log the
// call site and return a *CheckError rather than panicking, so callers
// decide whether to propagate or abort.
package timber
