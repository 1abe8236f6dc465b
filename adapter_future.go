package task

// Future is the external, blocking-future handle the future adapter bridges
// (spec.md's "an external thread pool or async mechanism", explicitly out
// of scope as a concrete implementation — only its shape is specified). It
// is resolved or rejected exactly once from another goroutine; a Tick polls
// it with a non-blocking receive, the Go equivalent of the source's
// zero-timeout wait_for.
//
// Grounded on the teacher's NewChainedPromise, which returns a promise
// alongside its resolve/reject functions (promise.go); the same shape fits
// a future a worker goroutine drives to completion.
type Future[T any] struct {
	done chan futureOutcome[T]
}

type futureOutcome[T any] struct {
	value T
	err   error
}

// NewFuture creates an unresolved Future and the resolve/reject functions
// that settle it. Only the first call between resolve and reject has any
// effect; later calls are dropped.
func NewFuture[T any]() (fut *Future[T], resolve func(T), reject func(error)) {
	fut = &Future[T]{done: make(chan futureOutcome[T], 1)}
	return fut, fut.tryResolve, fut.tryReject
}

func (f *Future[T]) tryResolve(value T) {
	select {
	case f.done <- futureOutcome[T]{value: value}:
	default:
	}
}

func (f *Future[T]) tryReject(err error) {
	select {
	case f.done <- futureOutcome[T]{err: err}:
	default:
	}
}

// RunFuture starts fn on a new goroutine and returns a Future that resolves
// with its result. A panic inside fn is recovered and reported as the
// future's error, wrapped in PanicError — the one place this core catches
// an abnormal termination, per spec.md §7.
func RunFuture[T any](fn func() (T, error)) *Future[T] {
	fut, resolve, reject := NewFuture[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				reject(PanicError{Value: r})
			}
		}()
		value, err := fn()
		if err != nil {
			reject(err)
		} else {
			resolve(value)
		}
	}()
	return fut
}

// futureBody is the future adapter of spec.md §4.2. Cancellation is not
// propagated to the external handle: Tick ignores ctx.CancelRequested
// entirely, and the task keeps waiting for the underlying producer.
type futureBody[T any] struct {
	fut    *Future[T]
	result Result[T, error]
}

func (b *futureBody[T]) Tick(ctx Context) Status {
	select {
	case outcome := <-b.fut.done:
		if outcome.err != nil {
			if ctx.Scheduler != nil {
				ctx.Scheduler.logErr("future adapter observed error", outcome.err)
			}
			b.result = Failure[T, error](outcome.err)
			return StatusFailed
		}
		b.result = Success[T, error](outcome.value)
		return StatusSuccessful
	default:
		return StatusInProgress
	}
}

func (b *futureBody[T]) Get() *Result[T, error] {
	return &b.result
}

// MakeTaskFromFuture wraps an externally driven Future as a task. Each tick
// polls it with a zero-timeout receive: pending yields InProgress, a
// resolved value yields Successful, a rejected value (including a
// recovered panic, see RunFuture) yields Failed with the cause stored as
// the error.
func MakeTaskFromFuture[T any](sched *Scheduler, fut *Future[T]) *Task[T, error] {
	return newTask(newCell[T, error](sched, &futureBody[T]{fut: fut}))
}
