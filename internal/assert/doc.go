// Package assert checks caller contracts (index bounds, non-empty pops) in
// development builds.
//
// Violations are programming errors, not recoverable conditions, so they panic
// instead of returning errors. Building with -tags release compiles every check
// out; behavior on a violated contract is then undefined.
package assert
