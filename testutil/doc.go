// Package testutil provides testing utilities for govec.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	for _, s := range rng.Steps(1000) {
//	    // apply s to a vector and to a reference slice
//	}
//
// # Instrumented Elements
//
// Tracked, Fragile and Unique implement the govec lifetime interfaces and
// report every construction, copy, move and destruction to the Ledger
// installed by Track. Budgets on the Ledger inject failures:
//
//	l := testutil.Track(t)
//	l.FailCopyAfter(2) // the third copy fails with ErrInjected
//	...
//	assert.Equal(t, 0, l.Live())
package testutil
