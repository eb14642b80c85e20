// Package stack captures and renders call-stack snapshots for check
// failure reports.
package stack

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Frame is one call site in a captured stack.
type Frame struct {
	File     string // full path as reported by the runtime
	Function string // fully qualified function name
	Line     int
}

const maxDepth = 64

// Capture returns the calling goroutine's stack, innermost frame first.
// skip counts additional frames to omit beyond Capture itself.
func Capture(skip int) []Frame {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	callers := runtime.CallersFrames(pcs[:n])
	var out []Frame
	for {
		fr, more := callers.Next()
		if fr.File != "" {
			out = append(out, Frame{File: fr.File, Function: fr.Function, Line: fr.Line})
		}
		if !more {
			return out
		}
	}
}

// TrimBelow drops the leading frames that belong to the package with the
// given import path, so the first retained frame is that package's call
// site. Walking the frames keeps the cut stable across call depths,
// unlike trimming a fixed count.
func TrimBelow(frames []Frame, pkgPath string) []Frame {
	prefix := pkgPath + "."
	for i, f := range frames {
		if !strings.HasPrefix(f.Function, prefix) {
			return frames[i:]
		}
	}
	return nil
}

// Render formats the frame as "file::func:line<TAB>source", where source
// is the text of the source line when the file is readable.
func (f Frame) Render() string {
	return fmt.Sprintf("%s::%s:%d\t%s",
		filepath.Base(f.File), f.FuncName(), f.Line, SourceLine(f.File, f.Line))
}

// FuncName returns the function name without its package path.
func (f Frame) FuncName() string {
	name := f.Function
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

var (
	sourceMu    sync.Mutex
	sourceCache = map[string][]string{}
)

// SourceLine returns the text of the given 1-based line of file, trimmed
// of surrounding whitespace. Returns "" when the source is unavailable,
// as with stripped or relocated binaries.
func SourceLine(file string, line int) string {
	sourceMu.Lock()
	defer sourceMu.Unlock()

	lines, ok := sourceCache[file]
	if !ok {
		data, err := os.ReadFile(file)
		if err == nil {
			lines = strings.Split(string(data), "\n")
		}
		sourceCache[file] = lines
	}
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[line-1])
}
