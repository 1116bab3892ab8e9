package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values in [0,limit).
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}

// Op is a randomly chosen vector mutation.
type Op int

const (
	OpPushBack Op = iota
	OpPopBack
	OpInsert
	OpErase
	OpResize
	OpReserve
	OpShrink
	numOps
)

func (o Op) String() string {
	switch o {
	case OpPushBack:
		return "PushBack"
	case OpPopBack:
		return "PopBack"
	case OpInsert:
		return "Insert"
	case OpErase:
		return "Erase"
	case OpResize:
		return "Resize"
	case OpReserve:
		return "Reserve"
	case OpShrink:
		return "ShrinkToFit"
	default:
		return "unknown"
	}
}

// Step is one generated mutation. Pos is a valid position for a container of
// the size the step was generated against; Value is the payload to store.
type Step struct {
	Op    Op
	Pos   int
	Value int
}

// Steps generates n mutations that are valid when applied in order to a
// container that starts empty. PushBack and Insert are weighted so the
// container tends to grow.
func (r *RNG) Steps(n int) []Step {
	r.mu.Lock()
	defer r.mu.Unlock()

	steps := make([]Step, 0, n)
	size := 0
	for len(steps) < n {
		op := Op(r.rand.Intn(int(numOps) + 3))
		if op >= numOps {
			op = OpPushBack
		}

		s := Step{Op: op, Value: r.rand.Intn(1 << 20)}
		switch op {
		case OpPushBack:
			size++
		case OpPopBack:
			if size == 0 {
				continue
			}
			size--
		case OpInsert:
			s.Pos = r.rand.Intn(size + 1)
			size++
		case OpErase:
			if size == 0 {
				continue
			}
			s.Pos = r.rand.Intn(size)
			size--
		case OpResize:
			s.Pos = r.rand.Intn(2*size + 2)
			size = s.Pos
		case OpReserve:
			s.Pos = r.rand.Intn(4*size + 4)
		}
		steps = append(steps, s)
	}
	return steps
}
