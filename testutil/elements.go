package testutil

import (
	"errors"
	"testing"
)

// ErrInjected is returned by element hooks when a Ledger budget runs out.
var ErrInjected = errors.New("testutil: injected failure")

// Ledger counts element lifetime events and injects failures.
//
// Elements report to the ledger installed by Track. Budgets are the number
// of further calls that succeed; a negative budget never fails.
type Ledger struct {
	Created  int
	Inits    int
	Copies   int
	Moves    int
	Destroys int

	initBudget int
	copyBudget int
	moveBudget int
}

var active *Ledger

// Track installs a fresh Ledger for the duration of the test.
func Track(tb testing.TB) *Ledger {
	tb.Helper()
	l := &Ledger{initBudget: -1, copyBudget: -1, moveBudget: -1}
	active = l
	tb.Cleanup(func() { active = nil })
	return l
}

func ledger() *Ledger {
	if active == nil {
		return &Ledger{initBudget: -1, copyBudget: -1, moveBudget: -1}
	}
	return active
}

// Live returns the number of element values that have been brought to life
// and not yet destroyed. Moves hand a value over and do not change it.
func (l *Ledger) Live() int {
	return l.Created + l.Inits + l.Copies - l.Destroys
}

// FailInitAfter lets n more Init calls succeed and fails the rest.
func (l *Ledger) FailInitAfter(n int) { l.initBudget = n }

// FailCopyAfter lets n more Copy calls succeed and fails the rest.
func (l *Ledger) FailCopyAfter(n int) { l.copyBudget = n }

// FailMoveAfter lets n more Move calls succeed and fails the rest.
func (l *Ledger) FailMoveAfter(n int) { l.moveBudget = n }

// Heal removes every injected failure.
func (l *Ledger) Heal() {
	l.initBudget, l.copyBudget, l.moveBudget = -1, -1, -1
}

func spend(budget *int) error {
	switch {
	case *budget == 0:
		return ErrInjected
	case *budget > 0:
		*budget--
	}
	return nil
}

// Tracked is an element that can be copied and destroyed, and relocates by
// plain moves.
type Tracked struct {
	Value       int
	Initialized bool
}

// NewTracked creates a live Tracked value.
func NewTracked(v int) Tracked {
	ledger().Created++
	return Tracked{Value: v}
}

func (t *Tracked) Init() error {
	l := ledger()
	if err := spend(&l.initBudget); err != nil {
		return err
	}
	l.Inits++
	t.Initialized = true
	return nil
}

func (t Tracked) Copy() (Tracked, error) {
	l := ledger()
	if err := spend(&l.copyBudget); err != nil {
		return Tracked{}, err
	}
	l.Copies++
	return t, nil
}

func (t *Tracked) Destroy() {
	ledger().Destroys++
	t.Value = -1
}

// Fragile is an element whose moves may fail, so vectors of Fragile relocate
// by copying.
type Fragile struct {
	Value int
}

// NewFragile creates a live Fragile value.
func NewFragile(v int) Fragile {
	ledger().Created++
	return Fragile{Value: v}
}

func (f Fragile) Copy() (Fragile, error) {
	l := ledger()
	if err := spend(&l.copyBudget); err != nil {
		return Fragile{}, err
	}
	l.Copies++
	return f, nil
}

func (f Fragile) Move() (Fragile, error) {
	l := ledger()
	if err := spend(&l.moveBudget); err != nil {
		return Fragile{}, err
	}
	l.Moves++
	return f, nil
}

func (f *Fragile) Destroy() {
	ledger().Destroys++
	f.Value = -1
}

// Unique is a move-only element whose moves may fail.
type Unique struct {
	Value int
}

// NewUnique creates a live Unique value.
func NewUnique(v int) Unique {
	ledger().Created++
	return Unique{Value: v}
}

func (Unique) MoveOnly() {}

func (u Unique) Move() (Unique, error) {
	l := ledger()
	if err := spend(&l.moveBudget); err != nil {
		return Unique{}, err
	}
	l.Moves++
	return u, nil
}

func (u *Unique) Destroy() {
	ledger().Destroys++
	u.Value = -1
}
