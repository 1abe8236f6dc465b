package task

// Body is the task-body protocol of spec.md §4.1: a user- or adapter-
// supplied value that performs one unit of work. The scheduler drives a
// Body by calling Tick repeatedly until it returns a terminal Status;
// Get is only meaningful once that has happened.
//
// Tick is called on the goroutine executing the owning Scheduler's Poll.
// It must return StatusInProgress to request another tick; any other
// value is terminal and Tick must never be called again afterwards.
type Body[T, E any] interface {
	// Tick advances the body by one step. On a StatusSuccessful return,
	// Get().HasValue() must hold; on StatusFailed or StatusCanceled it
	// must not.
	Tick(ctx Context) Status
	// Get returns the completion payload. Defined only after Tick has
	// returned a terminal status (or, for a body with a non-InProgress
	// InitialStatus, immediately).
	Get() *Result[T, E]
}

// initialStatuser is the optional second half of the body protocol: a body
// implementing it starts its cell directly in the returned status when
// that status is not StatusInProgress, and Tick is never called. This is
// how the inline-value ("noop") adapter lifts an already-produced Result
// into the task world without a scheduler round-trip.
type initialStatuser interface {
	InitialStatus() Status
}
