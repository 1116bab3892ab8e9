package govec

// Initializer is implemented by element types that need more than a zero
// value to be default-constructed. Init is called on the destination slot.
type Initializer interface {
	Init() error
}

// Copier is implemented by element types whose copy construction may fail.
// Types without it are copied by plain assignment.
type Copier[T any] interface {
	Copy() (T, error)
}

// Mover is implemented by element types whose relocation may fail.
// Types without it are relocated bitwise, which cannot fail.
//
// Move must not modify its receiver. The vector keeps the old elements until
// every element has been relocated, then vacates them without Destroy; a
// failed relocation discards the new values the same way.
type Mover[T any] interface {
	Move() (T, error)
}

// Destroyer is implemented by element types that release resources when
// their lifetime ends. Destroy is called exactly once per live element.
type Destroyer interface {
	Destroy()
}

// MoveOnly marks element types that must never be duplicated. A vector of a
// MoveOnly type always relocates by moving, even when Move may fail.
type MoveOnly interface {
	MoveOnly()
}

// Relocation is the strategy used to carry live elements into a new block.
type Relocation uint8

const (
	// RelocateMove moves elements; the old slots are vacated without Destroy.
	RelocateMove Relocation = iota
	// RelocateCopy copies elements and destroys the originals only after every
	// copy succeeded.
	RelocateCopy
)

func (r Relocation) String() string {
	switch r {
	case RelocateMove:
		return "move"
	case RelocateCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// traits holds the lifetime hooks discovered for T.
type traits[T any] struct {
	initializer bool
	copier      bool
	mover       bool
	destroyer   bool
	moveOnly    bool
}

func traitsFor[T any]() traits[T] {
	p := any((*T)(nil))
	_, initializer := p.(Initializer)
	_, copier := p.(Copier[T])
	_, mover := p.(Mover[T])
	_, destroyer := p.(Destroyer)
	_, moveOnly := p.(MoveOnly)
	return traits[T]{
		initializer: initializer,
		copier:      copier,
		mover:       mover,
		destroyer:   destroyer,
		moveOnly:    moveOnly,
	}
}

// relocation picks move when moving cannot fail or copying is not allowed.
func (tr traits[T]) relocation() Relocation {
	if !tr.mover || tr.moveOnly {
		return RelocateMove
	}
	return RelocateCopy
}

// construct default-constructs into dst, which must be vacated.
func (tr traits[T]) construct(dst *T) error {
	if !tr.initializer {
		return nil
	}
	if err := any(dst).(Initializer).Init(); err != nil {
		var zero T
		*dst = zero
		return err
	}
	return nil
}

func (tr traits[T]) copy(src *T) (T, error) {
	if tr.copier {
		return any(src).(Copier[T]).Copy()
	}
	return *src, nil
}

func (tr traits[T]) move(src *T) (T, error) {
	if tr.mover {
		return any(src).(Mover[T]).Move()
	}
	return *src, nil
}

// destroy ends the lifetime of *p and vacates the slot.
func (tr traits[T]) destroy(p *T) {
	if tr.destroyer {
		any(p).(Destroyer).Destroy()
	}
	vacate(p)
}

// vacate clears a slot whose value has been moved out.
func vacate[T any](p *T) {
	var zero T
	*p = zero
}

func (tr traits[T]) destroyAll(s []T) {
	for i := range s {
		tr.destroy(&s[i])
	}
}

func vacateAll[T any](s []T) {
	clear(s)
}
