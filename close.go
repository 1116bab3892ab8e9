package govec

// Clear destroys every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	v.traits.destroyAll(v.data.Slice(0, v.size))
	v.size = 0
}

// Free destroys every element and releases the block. The vector is empty
// and may be reused afterwards.
func (v *Vector[T]) Free() {
	v.Clear()
	v.data.Release()
}
