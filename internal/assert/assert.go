//go:build !release

package assert

import "fmt"

// Enabled reports whether contract checks are compiled in.
const Enabled = true

// Assert panics with a formatted message if cond is false.
//
// The arguments are evaluated on every call. On hot paths with arguments,
// guard the check with Enabled and call Failf only once it has failed.
//
// Assert is a no-op when compiled with the release build tag.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		Failf(format, args...)
	}
}

// Failf panics with a formatted assertion message.
//
//go:noinline
func Failf(format string, args ...any) {
	panic(fmt.Sprintln("assertion failed:", fmt.Sprintf(format, args...)))
}
