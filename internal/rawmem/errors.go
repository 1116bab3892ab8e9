package rawmem

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrAllocationFailed is returned when a block cannot be allocated.
var ErrAllocationFailed = errors.New("rawmem: allocation failed")

// AllocationError describes a block request that could not be satisfied.
//
// errors.Is(err, ErrAllocationFailed) holds for every AllocationError; the
// underlying refusal (budget, overflow, runtime) is available via errors.Unwrap.
type AllocationError struct {
	Capacity int
	Bytes    int64
	cause    error
}

func (e *AllocationError) Error() string {
	if e.Bytes > 0 {
		return fmt.Sprintf("%v: %d slots (%s): %v",
			ErrAllocationFailed, e.Capacity, humanize.IBytes(uint64(e.Bytes)), e.cause) //nolint:gosec // Bytes > 0
	}
	return fmt.Sprintf("%v: %d slots: %v", ErrAllocationFailed, e.Capacity, e.cause)
}

func (e *AllocationError) Unwrap() []error {
	return []error{ErrAllocationFailed, e.cause}
}
