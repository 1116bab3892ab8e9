// Package govec provides Vector, a generic growable contiguous array with
// explicit element lifetimes.
//
// Vector offers amortized constant-time append, random access, and
// positional insertion and removal. Storage is a raw block of slots that is
// allocated separately from element construction; the vector decides when
// elements are constructed, destroyed, and relocated into a larger block.
//
// # Quick Start
//
//	v := govec.New[int]()
//	_ = v.PushBack(1)
//	_ = v.PushBack(3)
//	_, _ = v.Insert(1, 2) // 1 2 3
//	v.Erase(0)            // 2 3
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// # Element Lifetimes
//
// Element types opt into lifetime hooks by implementing optional interfaces:
//
//   - Initializer: default construction (Resize, NewSized, EmplaceBack(nil))
//   - Copier: copy construction that may fail (Clone, CopyFrom, relocation)
//   - Mover: relocation that may fail
//   - Destroyer: end of lifetime (PopBack, Erase, Resize, Clear, Free)
//   - MoveOnly: the type must never be duplicated
//
// Types implementing none of them behave like plain Go values.
//
// # Growth and Failure Guarantees
//
// A full vector grows to max(1, 2*Size()). Growth allocates the new block,
// places any inserted element at its final offset, then relocates every live
// element. The relocation strategy is chosen once per element type: elements
// are moved when moving cannot fail (no Mover) or when the type is MoveOnly,
// and copied otherwise. Old elements are released only after the new block is
// complete, so a failed allocation or element hook leaves the vector exactly
// as it was.
//
// # Errors
//
// Allocation failures match ErrAllocationFailed (and ErrMemoryLimitExceeded
// when a memory limit refused the block). Failed element hooks are reported
// as *ElementError matching ErrElementOp. Contract violations such as an
// out-of-range index panic in development builds and are unchecked under
// -tags release.
//
// # Memory Limits
//
// WithMemoryLimit caps a single vector. To cap several vectors together, share
// one controller from package resource:
//
//	rc := resource.NewController(resource.Config{MemoryLimit: 64 * datasize.MB})
//	a := govec.New[int](govec.WithMemoryAcquirer(rc))
//	b := govec.New[string](govec.WithMemoryAcquirer(rc))
//	fmt.Println(rc.MemoryUsage(), rc.PeakMemoryUsage())
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. A resource.Controller shared
// through WithMemoryAcquirer is.
package govec
