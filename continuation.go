package task

// gate is the per-combinator predicate applied to a finished predecessor's
// status (spec.md §4.4's "gate predicate"). then/on_finish's gate always
// passes; the others select a subset of terminal statuses.
type gate func(Status) bool

func gateAlways(Status) bool             { return true }
func gateSuccessful(s Status) bool       { return s == StatusSuccessful }
func gateFailedOrCanceled(s Status) bool { return s.IsFailed() }
func gateCanceled(s Status) bool         { return s == StatusCanceled }

// continuationBody implements the continuation body algorithm of spec.md
// §4.4: wait for the predecessor, consult the gate, invoke the callable at
// most once, and either adopt its Result directly or mirror a nested task's
// status on subsequent ticks. It is grounded on the predecessor-holding,
// invoke-once shape of the teacher's promise.go handler/addHandler, adapted
// from a resolve/reject callback pair to this package's gate+Result model.
type continuationBody[T, E, U, F any] struct {
	pred   *Task[T, E]
	gate   gate
	invoke func(*Task[T, E]) (Result[U, F], *Task[U, F])

	// canceled latches a cancel-request observed on any tick, including
	// ticks where the predecessor was still in-progress and the request
	// would otherwise be discarded before step 3 gets to see it (mirrors
	// loopBody.canceled's latching for the same reason).
	canceled bool
	invoked  bool
	nested   *Task[U, F]
	result   Result[U, F]
}

func (b *continuationBody[T, E, U, F]) Tick(ctx Context) Status {
	if ctx.CancelRequested {
		b.canceled = true
	}

	if !b.invoked {
		if b.pred.IsInProgress() {
			return StatusInProgress
		}
		// The predecessor is terminal; this body never reads it again after
		// invoke() returns below (even on the adopted-nested-task path),
		// so its held clone's reference can be dropped now.
		b.pred.c.release()
		if !b.gate(b.pred.Status()) {
			b.result = canceledFailure[U, F]()
			return StatusCanceled
		}
		if b.canceled {
			b.result = canceledFailure[U, F]()
			return StatusCanceled
		}

		b.invoked = true
		res, nested := b.invoke(b.pred)
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

	return b.pollNested(b.canceled)
}

func (b *continuationBody[T, E, U, F]) pollNested(cancelRequested bool) Status {
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

func (b *continuationBody[T, E, U, F]) Get() *Result[U, F] {
	return &b.result
}

func newContinuation[T, E, U, F any](
	pred *Task[T, E],
	sched *Scheduler,
	g gate,
	invoke func(*Task[T, E]) (Result[U, F], *Task[U, F]),
) *Task[U, F] {
	body := &continuationBody[T, E, U, F]{pred: pred.clone(), gate: g, invoke: invoke}
	return newTask(newCell[U, F](sched, body))
}

// --- then / on_finish: gate always passes ---

// Then invokes f with the predecessor once it finishes, regardless of its
// status, and adopts f's Result as the chainee's completion payload.
func Then[T, E, U, F any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) Result[U, F]) *Task[U, F] {
	return newContinuation(pred, sched, gateAlways, func(p *Task[T, E]) (Result[U, F], *Task[U, F]) {
		return f(p), nil
	})
}

// ThenValue is Then for a callable that returns a plain value on success,
// with no failure channel (F is struct{}).
func ThenValue[T, E, U any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) U) *Task[U, struct{}] {
	return newContinuation(pred, sched, gateAlways, func(p *Task[T, E]) (Result[U, struct{}], *Task[U, struct{}]) {
		return Success[U, struct{}](f(p)), nil
	})
}

// ThenVoid is Then for a callable with no return value.
func ThenVoid[T, E any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E])) *Task[struct{}, struct{}] {
	return newContinuation(pred, sched, gateAlways, func(p *Task[T, E]) (Result[struct{}, struct{}], *Task[struct{}, struct{}]) {
		f(p)
		return Success[struct{}, struct{}](struct{}{}), nil
	})
}

// ThenTask is Then for a callable that returns a nested task; the chainee
// mirrors the nested task's status from the tick after invocation onward
// (spec.md invariant 5), and forwards cancel-requests to it.
func ThenTask[T, E, U, F any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) *Task[U, F]) *Task[U, F] {
	return newContinuation(pred, sched, gateAlways, func(p *Task[T, E]) (Result[U, F], *Task[U, F]) {
		return Result[U, F]{}, f(p)
	})
}

// --- on_success: gate requires the predecessor succeeded ---

func OnSuccess[T, E, U, F any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) Result[U, F]) *Task[U, F] {
	return newContinuation(pred, sched, gateSuccessful, func(p *Task[T, E]) (Result[U, F], *Task[U, F]) {
		return f(p), nil
	})
}

func OnSuccessValue[T, E, U any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) U) *Task[U, struct{}] {
	return newContinuation(pred, sched, gateSuccessful, func(p *Task[T, E]) (Result[U, struct{}], *Task[U, struct{}]) {
		return Success[U, struct{}](f(p)), nil
	})
}

func OnSuccessVoid[T, E any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E])) *Task[struct{}, struct{}] {
	return newContinuation(pred, sched, gateSuccessful, func(p *Task[T, E]) (Result[struct{}, struct{}], *Task[struct{}, struct{}]) {
		f(p)
		return Success[struct{}, struct{}](struct{}{}), nil
	})
}

func OnSuccessTask[T, E, U, F any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) *Task[U, F]) *Task[U, F] {
	return newContinuation(pred, sched, gateSuccessful, func(p *Task[T, E]) (Result[U, F], *Task[U, F]) {
		return Result[U, F]{}, f(p)
	})
}

// --- on_fail: gate requires the predecessor failed or was canceled ---

func OnFail[T, E, U, F any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) Result[U, F]) *Task[U, F] {
	return newContinuation(pred, sched, gateFailedOrCanceled, func(p *Task[T, E]) (Result[U, F], *Task[U, F]) {
		return f(p), nil
	})
}

func OnFailValue[T, E, U any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) U) *Task[U, struct{}] {
	return newContinuation(pred, sched, gateFailedOrCanceled, func(p *Task[T, E]) (Result[U, struct{}], *Task[U, struct{}]) {
		return Success[U, struct{}](f(p)), nil
	})
}

func OnFailVoid[T, E any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E])) *Task[struct{}, struct{}] {
	return newContinuation(pred, sched, gateFailedOrCanceled, func(p *Task[T, E]) (Result[struct{}, struct{}], *Task[struct{}, struct{}]) {
		f(p)
		return Success[struct{}, struct{}](struct{}{}), nil
	})
}

func OnFailTask[T, E, U, F any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) *Task[U, F]) *Task[U, F] {
	return newContinuation(pred, sched, gateFailedOrCanceled, func(p *Task[T, E]) (Result[U, F], *Task[U, F]) {
		return Result[U, F]{}, f(p)
	})
}

// --- on_cancel: gate requires the predecessor was canceled ---

func OnCancel[T, E, U, F any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) Result[U, F]) *Task[U, F] {
	return newContinuation(pred, sched, gateCanceled, func(p *Task[T, E]) (Result[U, F], *Task[U, F]) {
		return f(p), nil
	})
}

func OnCancelValue[T, E, U any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) U) *Task[U, struct{}] {
	return newContinuation(pred, sched, gateCanceled, func(p *Task[T, E]) (Result[U, struct{}], *Task[U, struct{}]) {
		return Success[U, struct{}](f(p)), nil
	})
}

func OnCancelVoid[T, E any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E])) *Task[struct{}, struct{}] {
	return newContinuation(pred, sched, gateCanceled, func(p *Task[T, E]) (Result[struct{}, struct{}], *Task[struct{}, struct{}]) {
		f(p)
		return Success[struct{}, struct{}](struct{}{}), nil
	})
}

func OnCancelTask[T, E, U, F any](pred *Task[T, E], sched *Scheduler, f func(*Task[T, E]) *Task[U, F]) *Task[U, F] {
	return newContinuation(pred, sched, gateCanceled, func(p *Task[T, E]) (Result[U, F], *Task[U, F]) {
		return Result[U, F]{}, f(p)
	})
}
