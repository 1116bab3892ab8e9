package govec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/govec/internal/rawmem"
	"github.com/hupe1980/govec/resource"
)

var (
	// ErrAllocationFailed is returned when a raw block cannot be obtained.
	// The vector is left unmodified.
	ErrAllocationFailed = rawmem.ErrAllocationFailed

	// ErrMemoryLimitExceeded is returned (wrapped in ErrAllocationFailed) when
	// a block would exceed the configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

	// ErrElementOp is returned when an element's Init, Copy or Move hook fails.
	ErrElementOp = errors.New("element operation failed")
)

// Op names the element operation that failed.
type Op string

const (
	OpInit Op = "init"
	OpCopy Op = "copy"
	OpMove Op = "move"
)

// ElementError reports a failed element lifetime hook.
//
// The original underlying error can be accessed via errors.Unwrap.
type ElementError struct {
	Op    Op
	Index int
	cause error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%v: %s at index %d: %v", ErrElementOp, e.Op, e.Index, e.cause)
}

func (e *ElementError) Unwrap() []error { return []error{ErrElementOp, e.cause} }

func elementError(op Op, index int, err error) error {
	return &ElementError{Op: op, Index: index, cause: err}
}
