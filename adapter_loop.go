package task

// LoopContext is the mutable context threaded through a for-loop task's
// callbacks: the scheduler the loop (and its inner tasks) runs on, the
// user's accumulated data, and the current iteration index. Grounded on
// for_loop_task.h's LoopContext<UserContext>.
type LoopContext[C any] struct {
	Scheduler *Scheduler
	Data      C
	Index     int
}

// loopBody is the for-loop task adapter of spec.md §4.2. Per-iteration
// tick logic follows the four numbered steps there exactly, translated
// from for_loop_task.h's ForLoopTask::tick.
type loopBody[C, U, F, R, G any] struct {
	ctx        *LoopContext[C]
	create     func(*LoopContext[C]) *Task[U, F]
	afterEach  func(*LoopContext[C], *Task[U, F]) bool
	beforeEach func(*LoopContext[C]) bool
	finalize   func(*LoopContext[C], *Task[U, F], Status) Result[R, G]

	inner    *Task[U, F]
	canceled bool
	result   Result[R, G]
}

func (b *loopBody[C, U, F, R, G]) Tick(ctx Context) Status {
	if ctx.CancelRequested {
		if b.inner != nil {
			b.canceled = true
			b.inner.TryCancel()
			if b.inner.IsFinished() {
				return b.finishAll(StatusCanceled)
			}
			return StatusInProgress
		}
		return b.finishAll(StatusCanceled)
	}

	doStart := true
	if b.inner != nil {
		switch b.inner.Status() {
		case StatusCanceled:
			return b.finishAll(StatusCanceled)
		case StatusFailed:
			return b.finishAll(StatusFailed)
		case StatusSuccessful:
			doStart = b.finishCurrent()
		case StatusInProgress:
			return StatusInProgress
		}
	}

	if b.canceled {
		return b.finishAll(StatusCanceled)
	}
	if !doStart || !b.startNew() {
		return b.finishAll(StatusSuccessful)
	}
	return StatusInProgress
}

func (b *loopBody[C, U, F, R, G]) finishAll(with Status) Status {
	b.result = b.finalize(b.ctx, b.inner, with)
	return with
}

func (b *loopBody[C, U, F, R, G]) finishCurrent() bool {
	cont := b.afterEach(b.ctx, b.inner)
	b.ctx.Index++
	return cont
}

func (b *loopBody[C, U, F, R, G]) startNew() bool {
	if !b.beforeEach(b.ctx) {
		return false
	}
	b.inner = b.create(b.ctx)
	return true
}

func (b *loopBody[C, U, F, R, G]) Get() *Result[R, G] {
	return &b.result
}

// AlwaysStart is the default before-each callback: always launches another
// iteration.
func AlwaysStart[C any](*LoopContext[C]) bool { return true }

// AlwaysContinue is the default after-each callback: always continues
// after a successful iteration.
func AlwaysContinue[C, U, F any](*LoopContext[C], *Task[U, F]) bool { return true }

// MakeLoopTask constructs a for-loop task: create produces a new inner
// task, afterEach runs after each inner task succeeds and decides whether
// to iterate again, beforeEach runs before launching each inner task and
// decides whether to launch it, and finalize runs once when the loop ends
// to produce the final Result.
func MakeLoopTask[C, U, F, R, G any](
	sched *Scheduler,
	data C,
	create func(*LoopContext[C]) *Task[U, F],
	afterEach func(*LoopContext[C], *Task[U, F]) bool,
	beforeEach func(*LoopContext[C]) bool,
	finalize func(*LoopContext[C], *Task[U, F], Status) Result[R, G],
) *Task[R, G] {
	lc := &LoopContext[C]{Scheduler: sched, Data: data}
	body := &loopBody[C, U, F, R, G]{
		ctx:        lc,
		create:     create,
		afterEach:  afterEach,
		beforeEach: beforeEach,
		finalize:   finalize,
	}
	return newTask(newCell[R, G](sched, body))
}

// MakeForeverLoopTask is MakeLoopTask with beforeEach fixed to AlwaysStart:
// the "infinite loop variant" of spec.md §4.2 (before-each always-true; the
// loop only ends via cancellation, an inner task finishing non-
// successfully, or afterEach returning false).
func MakeForeverLoopTask[C, U, F, R, G any](
	sched *Scheduler,
	data C,
	create func(*LoopContext[C]) *Task[U, F],
	afterEach func(*LoopContext[C], *Task[U, F]) bool,
	finalize func(*LoopContext[C], *Task[U, F], Status) Result[R, G],
) *Task[R, G] {
	return MakeLoopTask(sched, data, create, afterEach, AlwaysStart[C], finalize)
}
