package task

import "sync/atomic"

// erasedCell is the type-erased view a Scheduler needs of a cell: enough to
// tick it once without knowing its (T, E). This is the "tagged-variant or
// trait-object over bodies" spec.md §9 calls for — the public Task[T,E]
// handle stays parameterized, and only the scheduler's runnable list deals
// in the erased form.
type erasedCell interface {
	tick() Status
	release()
}

// cell is the internal refcounted state backing a Task[T,E]: status,
// cancel-request flag, the embedded body, and the owning scheduler. A cell
// is created once per construction entry point and never reparented
// (spec.md invariant 5).
type cell[T, E any] struct {
	status          atomicStatus
	cancelRequested atomic.Bool
	refs            atomic.Int32
	scheduler       *Scheduler
	body            Body[T, E]
}

// newCell wraps body in a cell owned by sched. If body reports a non-
// InProgress initial status, the cell starts terminal and is never
// enqueued; otherwise it is posted to sched's runnable list, giving the
// scheduler its own reference alongside the one returned to the caller.
func newCell[T, E any](sched *Scheduler, body Body[T, E]) *cell[T, E] {
	c := &cell[T, E]{scheduler: sched, body: body}
	c.refs.Store(1) // the Task handle about to be returned

	if init, ok := body.(initialStatuser); ok {
		if initial := init.InitialStatus(); initial != StatusInProgress {
			c.status.TryFinish(initial)
			return c
		}
	}

	c.refs.Add(1) // the scheduler's runnable-list reference
	sched.post(c)
	return c
}

// tick implements erasedCell: one invocation of the body's step function,
// publishing a terminal status if the body reports one.
func (c *cell[T, E]) tick() Status {
	if s := c.status.Load(); s.IsTerminal() {
		return s
	}

	cancelRequested := c.cancelRequested.Swap(false)
	ctx := Context{Scheduler: c.scheduler, CancelRequested: cancelRequested}
	status := c.body.Tick(ctx)

	if status.IsTerminal() {
		c.status.TryFinish(status)
	}
	return status
}

// tryCancel sets the cancel-request flag. Safe to call concurrently;
// idempotent; the next tick (if any) observes it exactly once.
func (c *cell[T, E]) tryCancel() {
	c.cancelRequested.Store(true)
}

func (c *cell[T, E]) addRef() {
	c.refs.Add(1)
}

// release drops a reference. Go's garbage collector, not this counter,
// reclaims the cell's memory; the counter exists so the reference-
// counting scenario (spec.md S6, invariant 2) has something concrete to
// observe, matching the source's explicit refcount even though Go does
// not need it for memory safety. Called by the Scheduler when it drops
// the runnable-list reference a finished cell no longer needs, and by a
// continuation body releasing its held clone of a predecessor it no
// longer needs to observe.
func (c *cell[T, E]) release() {
	c.refs.Add(-1)
}

// refCount reports the cell's current reference count: one per live Task
// handle plus one while the scheduler's runnable list holds it (spec.md
// invariant 2).
func (c *cell[T, E]) refCount() int32 {
	return c.refs.Load()
}
