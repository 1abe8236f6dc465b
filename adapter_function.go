package task

// functionBody is the function-task adapter of spec.md §4.2: a callable,
// invoked at most once, whose return value is classified into a terminal
// Result or a nested task to mirror. A cancel-request observed before the
// first invocation yields Canceled with no call.
type functionBody[U, F any] struct {
	call func() (Result[U, F], *Task[U, F])

	invoked bool
	nested  *Task[U, F]
	result  Result[U, F]
}

func (b *functionBody[U, F]) Tick(ctx Context) Status {
	if !b.invoked {
		if ctx.CancelRequested {
			b.result = canceledFailure[U, F]()
			return StatusCanceled
		}

		b.invoked = true
		res, nested := b.call()
		if nested == nil {
			b.result = res
			if res.HasValue() {
				return StatusSuccessful
			}
			return StatusFailed
		}
		b.nested = nested
		return b.pollNested(false)
	}

	return b.pollNested(ctx.CancelRequested)
}

func (b *functionBody[U, F]) pollNested(cancelRequested bool) Status {
	if cancelRequested {
		b.nested.TryCancel()
	}
	if !b.nested.IsFinished() {
		return StatusInProgress
	}
	r, _ := b.nested.Get()
	b.result = *r
	return b.nested.Status()
}

func (b *functionBody[U, F]) Get() *Result[U, F] {
	return &b.result
}

// MakeTaskResult constructs a function task from a callable returning a
// Result directly (spec.md §4.2's "Result<U,F>" row).
func MakeTaskResult[U, F any](sched *Scheduler, f func() Result[U, F]) *Task[U, F] {
	body := &functionBody[U, F]{call: func() (Result[U, F], *Task[U, F]) {
		return f(), nil
	}}
	return newTask(newCell[U, F](sched, body))
}

// MakeTaskValue constructs a function task from a callable returning an
// ordinary value ("U" row); the produced task has no failure channel.
func MakeTaskValue[U any](sched *Scheduler, f func() U) *Task[U, struct{}] {
	body := &functionBody[U, struct{}]{call: func() (Result[U, struct{}], *Task[U, struct{}]) {
		return Success[U, struct{}](f()), nil
	}}
	return newTask(newCell[U, struct{}](sched, body))
}

// MakeTaskVoid constructs a function task from a callable with no return
// value ("void" row).
func MakeTaskVoid(sched *Scheduler, f func()) *Task[struct{}, struct{}] {
	body := &functionBody[struct{}, struct{}]{call: func() (Result[struct{}, struct{}], *Task[struct{}, struct{}]) {
		f()
		return Success[struct{}, struct{}](struct{}{}), nil
	}}
	return newTask(newCell[struct{}, struct{}](sched, body))
}

// MakeTaskNested constructs a function task from a callable returning a
// handle to another task ("Task<U,F>" row): the outer task mirrors the
// inner one's status from the tick after invocation onward, and forwards
// cancel-requests to it.
func MakeTaskNested[U, F any](sched *Scheduler, f func() *Task[U, F]) *Task[U, F] {
	body := &functionBody[U, F]{call: func() (Result[U, F], *Task[U, F]) {
		return Result[U, F]{}, f()
	}}
	return newTask(newCell[U, F](sched, body))
}
