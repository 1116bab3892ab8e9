package rawmem

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/govec/internal/assert"
	"github.com/hupe1980/govec/internal/conv"
)

// MemoryAcquirer is an interface for acquiring memory.
type MemoryAcquirer interface {
	AcquireMemory(amount int64) error
	ReleaseMemory(amount int64)
}

var errNegativeCapacity = errors.New("negative capacity")

// Buffer is an uninitialized block of slots for elements of type T.
//
// The zero Buffer is empty and ready to use.
type Buffer[T any] struct {
	slots []T
	bytes int64
	acq   MemoryAcquirer
}

// New allocates a block with room for capacity elements.
//
// A capacity of zero yields an empty Buffer without touching acq. On failure
// nothing is held against acq.
func New[T any](capacity int, acq MemoryAcquirer) (Buffer[T], error) {
	if capacity < 0 {
		return Buffer[T]{}, &AllocationError{Capacity: capacity, cause: errNegativeCapacity}
	}
	if capacity == 0 {
		return Buffer[T]{}, nil
	}

	bytes, err := SizeOf[T](capacity)
	if err != nil {
		return Buffer[T]{}, &AllocationError{Capacity: capacity, cause: err}
	}

	if acq != nil {
		if err := acq.AcquireMemory(bytes); err != nil {
			return Buffer[T]{}, &AllocationError{Capacity: capacity, Bytes: bytes, cause: err}
		}
	}

	slots, err := allocate[T](capacity)
	if err != nil {
		if acq != nil {
			acq.ReleaseMemory(bytes)
		}
		return Buffer[T]{}, &AllocationError{Capacity: capacity, Bytes: bytes, cause: err}
	}

	return Buffer[T]{slots: slots, bytes: bytes, acq: acq}, nil
}

// SizeOf returns the footprint of n slots of T in bytes.
func SizeOf[T any](n int) (int64, error) {
	var zero T
	width, err := conv.UintptrToInt64(unsafe.Sizeof(zero))
	if err != nil {
		return 0, err
	}
	return conv.MulInt64(int64(n), width)
}

// allocate turns the runtime's makeslice panic into an error.
func allocate[T any](n int) (slots []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("runtime: %v", r)
		}
	}()
	return make([]T, n), nil
}

// Capacity returns the number of slots in the block.
func (b *Buffer[T]) Capacity() int {
	return len(b.slots)
}

// Bytes returns the footprint of the block held against its acquirer.
func (b *Buffer[T]) Bytes() int64 {
	return b.bytes
}

// Addr returns the address of the slot at offset.
//
// offset may equal Capacity (one past the end), in which case Addr returns
// nil: the position is legal to compute but never to dereference.
func (b *Buffer[T]) Addr(offset int) *T {
	if assert.Enabled && (offset < 0 || offset > len(b.slots)) {
		assert.Failf("offset %d out of range [0,%d]", offset, len(b.slots))
	}
	if offset == len(b.slots) {
		return nil
	}
	return &b.slots[offset]
}

// At returns the slot at index.
func (b *Buffer[T]) At(index int) *T {
	if assert.Enabled && (index < 0 || index >= len(b.slots)) {
		assert.Failf("index %d out of range [0,%d)", index, len(b.slots))
	}
	return &b.slots[index]
}

// Slice returns the slots in [from, to).
func (b *Buffer[T]) Slice(from, to int) []T {
	if assert.Enabled && (from < 0 || from > to || to > len(b.slots)) {
		assert.Failf("range [%d,%d) out of range [0,%d]", from, to, len(b.slots))
	}
	return b.slots[from:to:to]
}

// Swap exchanges the blocks of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	*b, *other = *other, *b
}

// Take transfers the block to the returned Buffer and leaves b empty.
func (b *Buffer[T]) Take() Buffer[T] {
	out := *b
	*b = Buffer[T]{}
	return out
}

// Assign moves src into b, but only when src is strictly larger.
//
// When src.Capacity() <= b.Capacity() Assign does nothing and src keeps its
// block. Otherwise b releases its own block, adopts src's, and src becomes
// empty.
// Vector never depends on the no-op branch; it replaces blocks with Swap and
// Take.
func (b *Buffer[T]) Assign(src *Buffer[T]) {
	if b == src || len(src.slots) <= len(b.slots) {
		return
	}
	b.Release()
	*b = src.Take()
}

// Release deallocates the block. It runs no element hooks.
func (b *Buffer[T]) Release() {
	if b.acq != nil && b.bytes > 0 {
		b.acq.ReleaseMemory(b.bytes)
	}
	*b = Buffer[T]{}
}
