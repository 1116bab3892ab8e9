package govec

import (
	"context"
	"time"

	"github.com/hupe1980/govec/internal/assert"
	"github.com/hupe1980/govec/internal/rawmem"
)

// Vector is a growable contiguous array of T.
//
// Slots [0, Size()) hold live elements; slots [Size(), Capacity()) are
// vacated and hold zero values. Element lifetimes are driven by the optional
// Initializer, Copier, Mover, Destroyer and MoveOnly interfaces of T.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data   rawmem.Buffer[T]
	size   int
	traits traits[T]
	reloc  Relocation
	opts   options
}

// New creates an empty vector with zero capacity.
func New[T any](opts ...Option) *Vector[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	tr := traitsFor[T]()
	return &Vector[T]{
		traits: tr,
		reloc:  tr.relocation(),
		opts:   o,
	}
}

// NewSized creates a vector holding n default-constructed elements, with
// capacity n.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.Resize(n); err != nil {
		v.Free()
		return nil, err
	}
	return v, nil
}

// Clone returns an independent copy with capacity equal to v.Size().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.copyOf(v.opts)
}

func (v *Vector[T]) copyOf(opts options) (*Vector[T], error) {
	w := &Vector[T]{traits: v.traits, reloc: v.reloc, opts: opts}

	nd, err := rawmem.New[T](v.size, opts.acquirer)
	if err != nil {
		return nil, err
	}

	src := v.data.Slice(0, v.size)
	dst := nd.Slice(0, v.size)
	for i := range src {
		val, err := v.traits.copy(&src[i])
		if err != nil {
			v.traits.destroyAll(dst[:i])
			nd.Release()
			return nil, v.elementFailure(OpCopy, i, err)
		}
		dst[i] = val
	}

	w.data = nd
	w.size = v.size
	return w, nil
}

// Move transfers v's storage to a new vector in constant time and leaves v
// empty.
func (v *Vector[T]) Move() *Vector[T] {
	w := &Vector[T]{traits: v.traits, reloc: v.reloc, opts: v.opts}
	w.data = v.data.Take()
	w.size = v.size
	v.size = 0
	return w
}

// CopyFrom replaces the contents of v with copies of src's elements.
//
// When src does not fit into v's capacity, the copy is built in a new block
// first and v is unchanged on failure. Otherwise elements are assigned in
// place; a failed copy leaves v valid but partially assigned.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}

	if src.size > v.data.Capacity() {
		tmp, err := src.copyOf(v.opts)
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Free()
		return nil
	}

	dst := v.data.Slice(0, v.data.Capacity())
	from := src.data.Slice(0, src.size)

	for i := range min(v.size, src.size) {
		val, err := v.traits.copy(&from[i])
		if err != nil {
			return v.elementFailure(OpCopy, i, err)
		}
		v.traits.destroy(&dst[i])
		dst[i] = val
	}

	if src.size < v.size {
		v.traits.destroyAll(dst[src.size:v.size])
		v.size = src.size
		return nil
	}

	for i := v.size; i < src.size; i++ {
		val, err := v.traits.copy(&from[i])
		if err != nil {
			return v.elementFailure(OpCopy, i, err)
		}
		dst[i] = val
		v.size = i + 1
	}
	return nil
}

// MoveFrom takes src's contents in constant time. src receives v's previous
// contents.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}

// Swap exchanges the contents of v and other in constant time. Options stay
// with their vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements the current block can hold.
func (v *Vector[T]) Capacity() int {
	return v.data.Capacity()
}

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Relocation reports how elements are carried into a new block.
func (v *Vector[T]) Relocation() Relocation {
	return v.reloc
}

// At returns a reference to the element at index.
//
// The reference is invalidated by any operation that reallocates.
func (v *Vector[T]) At(index int) *T {
	if assert.Enabled && (index < 0 || index >= v.size) {
		assert.Failf("index %d out of range [0,%d)", index, v.size)
	}
	return v.data.At(index)
}

// Front returns a reference to the first element.
func (v *Vector[T]) Front() *T {
	assert.Assert(v.size > 0, "Front on empty vector")
	return v.data.At(0)
}

// Back returns a reference to the last element.
func (v *Vector[T]) Back() *T {
	assert.Assert(v.size > 0, "Back on empty vector")
	return v.data.At(v.size - 1)
}

// Data returns the live elements as a slice sharing v's storage.
func (v *Vector[T]) Data() []T {
	return v.data.Slice(0, v.size)
}

// Reserve ensures capacity for at least n elements. When n exceeds the
// current capacity the block is replaced by one of exactly n slots.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Capacity() {
		return nil
	}
	return v.reallocate(n, nil)
}

// Resize changes the number of live elements to n, default-constructing new
// elements or destroying surplus ones from the back.
func (v *Vector[T]) Resize(n int) error {
	if assert.Enabled && n < 0 {
		assert.Failf("negative size %d", n)
	}

	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		fresh := v.data.Slice(v.size, n)
		for i := range fresh {
			if err := v.traits.construct(&fresh[i]); err != nil {
				v.traits.destroyAll(fresh[:i])
				return v.elementFailure(OpInit, v.size+i, err)
			}
		}
		v.size = n
	case n < v.size:
		v.traits.destroyAll(v.data.Slice(n, v.size))
		v.size = n
	}
	return nil
}

// ShrinkToFit reduces capacity to Size(). An empty vector releases its
// block.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == v.data.Capacity() {
		return nil
	}
	if v.size == 0 {
		v.data.Release()
		return nil
	}
	return v.reallocate(v.size, nil)
}

// PushBack appends value, growing the block when it is full.
//
// On error value is not stored and v is unchanged.
func (v *Vector[T]) PushBack(value T) error {
	if v.size == v.data.Capacity() {
		return v.growInsert(v.size, value)
	}
	*v.data.At(v.size) = value
	v.size++
	return nil
}

// EmplaceBack constructs a new last element in place by calling init on its
// zeroed slot, and returns a reference to it. A nil init default-constructs.
func (v *Vector[T]) EmplaceBack(init func(*T) error) (*T, error) {
	init = v.initOrDefault(init)

	if v.size == v.data.Capacity() {
		if err := v.reallocate(v.grownCapacity(), &hole[T]{at: v.size, init: init}); err != nil {
			return nil, err
		}
	} else {
		slot := v.data.At(v.size)
		if err := init(slot); err != nil {
			vacate(slot)
			return nil, v.elementFailure(OpInit, v.size, err)
		}
	}
	v.size++
	return v.data.At(v.size - 1), nil
}

// PopBack destroys the last element.
func (v *Vector[T]) PopBack() {
	assert.Assert(v.size > 0, "PopBack on empty vector")
	v.size--
	v.traits.destroy(v.data.At(v.size))
}

// Insert places value at pos, shifting the elements at and after pos one
// slot to the right. It returns the index of the inserted element.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if assert.Enabled && (pos < 0 || pos > v.size) {
		assert.Failf("position %d out of range [0,%d]", pos, v.size)
	}

	switch {
	case v.size == v.data.Capacity():
		if err := v.growInsert(pos, value); err != nil {
			return 0, err
		}
		return pos, nil
	case pos == v.size:
		*v.data.At(pos) = value
	default:
		v.shiftRight(pos)
		*v.data.At(pos) = value
	}
	v.size++
	return pos, nil
}

// Emplace constructs a new element at pos by calling init, shifting the
// elements at and after pos one slot to the right. A nil init
// default-constructs. When the element lands in the middle of the vector it
// is constructed in a temporary first and then moved into place.
func (v *Vector[T]) Emplace(pos int, init func(*T) error) (int, error) {
	if assert.Enabled && (pos < 0 || pos > v.size) {
		assert.Failf("position %d out of range [0,%d]", pos, v.size)
	}
	init = v.initOrDefault(init)

	switch {
	case v.size == v.data.Capacity():
		if err := v.reallocate(v.grownCapacity(), &hole[T]{at: pos, init: init}); err != nil {
			return 0, err
		}
	case pos == v.size:
		slot := v.data.At(pos)
		if err := init(slot); err != nil {
			vacate(slot)
			return 0, v.elementFailure(OpInit, pos, err)
		}
	default:
		var tmp T
		if err := init(&tmp); err != nil {
			return 0, v.elementFailure(OpInit, pos, err)
		}
		v.shiftRight(pos)
		*v.data.At(pos) = tmp
	}
	v.size++
	return pos, nil
}

// Erase destroys the element at pos and shifts the following elements one
// slot to the left. It returns pos, the index of the element that now
// follows the erased one.
func (v *Vector[T]) Erase(pos int) int {
	if assert.Enabled && (pos < 0 || pos >= v.size) {
		assert.Failf("position %d out of range [0,%d)", pos, v.size)
	}

	live := v.data.Slice(0, v.size)
	v.traits.destroy(&live[pos])
	copy(live[pos:], live[pos+1:])
	vacate(&live[v.size-1])
	v.size--
	return pos
}

// growInsert reallocates a full vector with value placed at pos. It is kept
// out of the append and insert fast paths, which must not take value's
// address.
func (v *Vector[T]) growInsert(pos int, value T) error {
	if err := v.reallocate(v.grownCapacity(), &hole[T]{at: pos, value: &value}); err != nil {
		return err
	}
	v.size++
	return nil
}

func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	return 2 * v.size
}

func (v *Vector[T]) initOrDefault(init func(*T) error) func(*T) error {
	if init != nil {
		return init
	}
	return v.traits.construct
}

// shiftRight moves [pos, size) one slot to the right. The slot at size must
// be vacated; the slot at pos is left holding a stale copy.
func (v *Vector[T]) shiftRight(pos int) {
	s := v.data.Slice(0, v.size+1)
	copy(s[pos+1:], s[pos:v.size])
}

func (v *Vector[T]) elementFailure(op Op, index int, err error) error {
	v.opts.metricsCollector.RecordElementFailure(op)
	return elementError(op, index, err)
}

// hole is an element placed into the new block during reallocation.
// Exactly one of init and value is set.
type hole[T any] struct {
	at    int
	init  func(*T) error
	value *T
}

func (v *Vector[T]) reallocate(capacity int, h *hole[T]) error {
	start := time.Now()
	oldCapacity := v.data.Capacity()
	relocated := v.size

	err := v.relocate(capacity, h)
	d := time.Since(start)
	if err != nil {
		relocated = 0
	}
	v.opts.metricsCollector.RecordReallocation(oldCapacity, capacity, relocated, d, err)
	if err != nil {
		return err
	}

	v.opts.logger.LogReallocation(context.Background(), oldCapacity, capacity, relocated, v.reloc, v.data.Bytes(), d)
	return nil
}

// relocate moves the live elements into a new block of the given capacity
// and swaps it in. Until the swap nothing observable in v changes, so any
// failure leaves v exactly as it was.
func (v *Vector[T]) relocate(capacity int, h *hole[T]) error {
	nd, err := rawmem.New[T](capacity, v.opts.acquirer)
	if err != nil {
		return err
	}
	// After the swap below this releases the old block.
	defer nd.Release()

	if h != nil {
		slot := nd.At(h.at)
		if h.init != nil {
			if err := h.init(slot); err != nil {
				vacate(slot)
				return v.elementFailure(OpInit, h.at, err)
			}
		} else {
			*slot = *h.value
		}
	}

	if err := v.carry(&nd, h); err != nil {
		if h != nil {
			if h.init != nil {
				v.traits.destroy(nd.At(h.at))
			} else {
				vacate(nd.At(h.at))
			}
		}
		return err
	}

	v.data.Swap(&nd)
	return nil
}

// carry fills nd with the live elements, leaving room for h. On success the
// old slots are destroyed (copy) or vacated (move). On failure everything
// carried so far is removed from nd and the old slots are untouched.
func (v *Vector[T]) carry(nd *rawmem.Buffer[T], h *hole[T]) error {
	src := v.data.Slice(0, v.size)
	target := func(i int) int {
		if h != nil && i >= h.at {
			return i + 1
		}
		return i
	}

	op, carryOne := OpMove, v.traits.move
	if v.reloc == RelocateCopy {
		op, carryOne = OpCopy, v.traits.copy
	}

	for i := range src {
		val, err := carryOne(&src[i])
		if err != nil {
			for k := range i {
				if op == OpCopy {
					v.traits.destroy(nd.At(target(k)))
				} else {
					vacate(nd.At(target(k)))
				}
			}
			return v.elementFailure(op, i, err)
		}
		*nd.At(target(i)) = val
	}

	if op == OpCopy {
		v.traits.destroyAll(src)
	} else {
		vacateAll(src)
	}
	return nil
}
