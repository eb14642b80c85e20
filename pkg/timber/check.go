package timber

import (
	"cmp"
	"fmt"
	"path/filepath"
	"reflect"

	"github.com/crimson-sun/timber/internal/stack"
)

// CheckError reports a violated invariant. The message names the
// comparison that failed and the operand values, so failures reproduce
// without a debugger attached.
type CheckError struct {
	Message string
}

func (e *CheckError) Error() string { return e.Message }

// pkgPath is this package's import path, used to trim helper frames from
// check failure traces.
const pkgPath = "github.com/crimson-sun/timber/pkg/timber"

// Check returns a *CheckError when condition is false.
func Check(condition bool, msg ...string) error {
	if condition {
		return nil
	}
	return failCheck(defaultMsg(msg, "Check failed."))
}

// CheckEq returns a *CheckError when a != b.
func CheckEq[T comparable](a, b T, msg ...string) error {
	if a == b {
		return nil
	}
	return failCheck(defaultMsg(msg, fmt.Sprintf("check failed: %v != %v", a, b)))
}

// CheckNe returns a *CheckError when a == b.
func CheckNe[T comparable](a, b T, msg ...string) error {
	if a != b {
		return nil
	}
	return failCheck(defaultMsg(msg, fmt.Sprintf("check failed: %v == %v", a, b)))
}

// CheckLe returns a *CheckError when a > b.
func CheckLe[T cmp.Ordered](a, b T, msg ...string) error {
	if a <= b {
		return nil
	}
	return failCheck(defaultMsg(msg, fmt.Sprintf("check failed: %v > %v", a, b)))
}

// CheckGe returns a *CheckError when a < b.
func CheckGe[T cmp.Ordered](a, b T, msg ...string) error {
	if a >= b {
		return nil
	}
	return failCheck(defaultMsg(msg, fmt.Sprintf("check failed: %v < %v", a, b)))
}

// CheckLt returns a *CheckError when a >= b.
func CheckLt[T cmp.Ordered](a, b T, msg ...string) error {
	if a < b {
		return nil
	}
	return failCheck(defaultMsg(msg, fmt.Sprintf("check failed: %v >= %v", a, b)))
}

// CheckGt returns a *CheckError when a <= b.
func CheckGt[T cmp.Ordered](a, b T, msg ...string) error {
	if a > b {
		return nil
	}
	return failCheck(defaultMsg(msg, fmt.Sprintf("check failed: %v <= %v", a, b)))
}

// CheckNotNil returns a *CheckError when v is nil. A typed nil pointer,
// map, slice, channel, func, or interface wrapped in a non-nil interface
// value still counts as nil.
func CheckNotNil(v any, msg ...string) error {
	if !isNil(v) {
		return nil
	}
	return failCheck(defaultMsg(msg, "Check failed. Value is nil."))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func defaultMsg(msg []string, fallback string) string {
	if len(msg) > 0 && msg[0] != "" {
		return msg[0]
	}
	return fallback
}

// failCheck reports the failure and builds the returned error. The
// summary line is emitted at FATAL severity regardless of the configured
// threshold; the stack detail lines honor it. The stack is trimmed by
// walking frames until the first one outside this package, so the
// printed trace ends at the check call site at any call depth.
func failCheck(message string) error {
	frames := stack.TrimBelow(stack.Capture(0), pkgPath)

	file, line := "???", 0
	if len(frames) > 0 {
		file, line = filepath.Base(frames[0].File), frames[0].Line
	}
	std.emit(FatalLevel, file, line, message)

	if DebugLevel >= std.Level() {
		std.emit(DebugLevel, file, line, "Check failed here:")
		// Outermost first, ending at the check call site.
		for i := len(frames) - 1; i >= 0; i-- {
			std.emit(DebugLevel, file, line, frames[i].Render())
		}
	}
	return &CheckError{Message: message}
}
