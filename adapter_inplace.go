package task

// StepContext is the mutable context carried by an in-place step task:
// the scheduler it runs on and the user's data, updated in place by the
// step callback across ticks. Grounded on in_place_task.h's Context<UserContext>.
type StepContext[C any] struct {
	Scheduler *Scheduler
	Data      C
}

// inplaceBody is the in-place step task adapter of spec.md §4.2: a step
// callback runs each tick until it returns terminal, then a finalizer maps
// the context to the final Result exactly once.
type inplaceBody[C, R, G any] struct {
	ctx      *StepContext[C]
	step     func(ctx *StepContext[C], cancelRequested bool) Status
	finalize func(*StepContext[C]) Result[R, G]

	finalized bool
	result    Result[R, G]
}

func (b *inplaceBody[C, R, G]) Tick(ctx Context) Status {
	status := b.step(b.ctx, ctx.CancelRequested)
	if status.IsTerminal() && !b.finalized {
		b.finalized = true
		b.result = b.finalize(b.ctx)
	}
	return status
}

func (b *inplaceBody[C, R, G]) Get() *Result[R, G] {
	return &b.result
}

// MakeInPlaceTask constructs an in-place step task: step receives the
// mutable context and the cancel-requested flag and returns a Status each
// tick; once it returns terminal, finalize runs exactly once to produce
// the task's Result.
func MakeInPlaceTask[C, R, G any](
	sched *Scheduler,
	data C,
	step func(ctx *StepContext[C], cancelRequested bool) Status,
	finalize func(*StepContext[C]) Result[R, G],
) *Task[R, G] {
	ctx := &StepContext[C]{Scheduler: sched, Data: data}
	body := &inplaceBody[C, R, G]{ctx: ctx, step: step, finalize: finalize}
	return newTask(newCell[R, G](sched, body))
}
