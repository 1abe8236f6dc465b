package task

import "sync/atomic"

// Task is the user-facing handle of spec.md §4.3: a counted reference to a
// cell, typed by (T, E). It is move-only by convention — Go has no linear
// types, so this is documentation rather than a compiler-enforced rule, but
// callers should treat a *Task[T,E]'s result as consumed once passed to
// Consume. Continuation constructors leave the predecessor handle usable by
// the caller. Cloning is reserved for the combinator
// machinery, which needs to hold the predecessor alongside the new cell it
// constructs.
type Task[T, E any] struct {
	c        *cell[T, E]
	consumed atomic.Bool
}

// newTask wraps c in a user-facing handle, taking the reference c already
// accounts for (see newCell).
func newTask[T, E any](c *cell[T, E]) *Task[T, E] {
	return &Task[T, E]{c: c}
}

// clone takes an additional reference to the same cell. Used internally by
// continuation constructors to keep the predecessor alive for the gate
// check without taking ownership away from the caller.
func (t *Task[T, E]) clone() *Task[T, E] {
	t.c.addRef()
	return &Task[T, E]{c: t.c}
}

// Status returns the cell's current status.
func (t *Task[T, E]) Status() Status {
	return t.c.status.Load()
}

// IsInProgress reports whether the task has not yet reached a terminal
// status.
func (t *Task[T, E]) IsInProgress() bool {
	return t.Status() == StatusInProgress
}

// IsFinished reports whether the task has reached a terminal status.
func (t *Task[T, E]) IsFinished() bool {
	return t.Status().IsTerminal()
}

// IsSuccessful reports whether the task finished StatusSuccessful.
func (t *Task[T, E]) IsSuccessful() bool {
	return t.Status() == StatusSuccessful
}

// IsFailed reports whether the task finished StatusFailed or
// StatusCanceled; cancellation is a species of failure for downstream
// selectors (spec.md §4.3).
func (t *Task[T, E]) IsFailed() bool {
	return t.Status().IsFailed()
}

// IsCanceled reports whether the task finished StatusCanceled.
func (t *Task[T, E]) IsCanceled() bool {
	return t.Status() == StatusCanceled
}

// Get returns the completion payload. Defined only once IsFinished is
// true; returns ErrNotFinished otherwise.
func (t *Task[T, E]) Get() (*Result[T, E], error) {
	if !t.IsFinished() {
		return nil, ErrNotFinished
	}
	return t.c.body.Get(), nil
}

// Consume moves the result out of the task. A second call returns
// ErrAlreadyConsumed (spec.md §9 leaves a second consume undefined; this
// module defines it as an error rather than a panic or silent zero value).
func (t *Task[T, E]) Consume() (Result[T, E], error) {
	if !t.IsFinished() {
		return Result[T, E]{}, ErrNotFinished
	}
	if t.consumed.Swap(true) {
		return Result[T, E]{}, ErrAlreadyConsumed
	}
	return *t.c.body.Get(), nil
}

// TryCancel requests cancellation. Safe to call concurrently; idempotent;
// gives no guarantee the body honors it.
func (t *Task[T, E]) TryCancel() {
	t.c.tryCancel()
}

// Scheduler returns the owning scheduler.
func (t *Task[T, E]) Scheduler() *Scheduler {
	return t.c.scheduler
}
