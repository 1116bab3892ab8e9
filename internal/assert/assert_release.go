//go:build release

package assert

import "fmt"

// Enabled reports whether contract checks are compiled in.
const Enabled = false

// Assert panics with a formatted message if cond is false.
//
// Assert is a no-op when compiled with the release build tag.
func Assert(cond bool, format string, args ...any) {}

// Failf panics with a formatted assertion message. Call sites guard it with
// Enabled, so release builds never reach it.
//
//go:noinline
func Failf(format string, args ...any) {
	panic(fmt.Sprintln("assertion failed:", fmt.Sprintf(format, args...)))
}
