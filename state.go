package task

import (
	"sync/atomic"
)

// atomicStatus is a lock-free holder for a cell's Status, padded to avoid
// false sharing with neighbouring fields on a cell that is polled from one
// goroutine while read from others (try_cancel, status queries).
//
// The transition rule enforced here is the one spec.md §3 requires: from
// StatusInProgress to any terminal value, exactly once. Terminal states are
// absorbing; TryFinish on an already-terminal status is a no-op that reports
// failure, matching invariant 1 ("reaches a terminal value exactly once").
type atomicStatus struct { // betteralign:ignore
	_ [64]byte      // cache line padding (before value) //nolint:unused
	v atomic.Uint64 // Status value
	_ [56]byte      // pad to complete cache line (64 - 8 = 56) //nolint:unused
}

// Load returns the current status. Uses acquire ordering on the word so
// that a reader observing a terminal status also observes every write
// (notably the result carrier) that happened-before the status publish.
func (s *atomicStatus) Load() Status {
	return Status(s.v.Load())
}

// TryFinish attempts to publish a terminal status from StatusInProgress.
// Returns true if this call performed the transition.
func (s *atomicStatus) TryFinish(to Status) bool {
	return s.v.CompareAndSwap(uint64(StatusInProgress), uint64(to))
}

// IsTerminal reports whether the held status is terminal.
func (s *atomicStatus) IsTerminal() bool {
	return s.Load().IsTerminal()
}
