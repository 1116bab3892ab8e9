// Package rawmem owns the raw blocks that back a vector.
//
// A Buffer is a fixed-capacity run of slots sized for a requested element
// count. It separates allocation from construction: the Buffer never decides
// which slots hold live values and never runs element lifetime hooks. The
// owning vector constructs into slots, destroys them, and relocates values
// between Buffers.
//
// # Ownership
//
// A Buffer is exclusively owned. Ownership moves with Take (move construction),
// Swap, and Assign (move assignment). Release deallocates the block and
// returns its footprint to the MemoryAcquirer that granted it.
//
// # Contracts
//
// Offsets and indices are checked by internal/assert in development builds
// and left to the runtime's slice bounds checks under -tags release.
package rawmem
