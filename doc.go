// Package task provides a cooperative task composition core: asynchronous
// work represented as first-class values ("tasks"), composed with
// continuations that fire on completion, failure, cancellation, or
// success, and driven through an explicit, user-controlled polling loop
// (a "Scheduler").
//
// # Architecture
//
// Five pieces, leaves first:
//
//   - [Result] holds either a success value of T or an error of E; either
//     side may be the empty struct{} ("unit").
//   - [Body] is the user- or adapter-supplied step function (Tick) and
//     accessor (Get) that defines one unit of work.
//   - the internal cell holds a Body's refcounted runtime state: an atomic
//     status, a one-shot cancel-request flag, and the owning Scheduler.
//   - [Task] is the user-facing handle: a counted reference to a cell,
//     typed by (T, E), exposing status queries, result extraction and
//     cancellation, and taken as the predecessor by the continuation
//     constructors ([Then], [OnSuccess], [OnFail], [OnCancel] and their
//     Value/Void/Task variants).
//   - [Scheduler] owns the runnable cells and advances them in batches via
//     [Scheduler.Poll].
//
// Nothing advances unless [Scheduler.Poll] is called: there is no implicit
// progress, no thread-per-task model, and no work-stealing. A Body runs on
// whichever goroutine called Poll on its owning Scheduler; suspension is
// expressed by returning [StatusInProgress] from Tick, not by blocking.
//
// # Adapters
//
// Five adapter bodies ship with the core: [FromResult] (an already-
// produced value), [MakeTaskResult]/[MakeTaskValue]/[MakeTaskVoid]/
// [MakeTaskNested] (a plain function, classified by its return shape),
// [MakeTaskFromFuture] (a blocking external producer, bridged via
// [Future]), [MakeLoopTask] (launches inner tasks until a condition is
// met), and [MakeInPlaceTask] (a mutable context stepped each tick).
//
// # Example
//
//	sched := task.NewScheduler()
//	t := task.MakeTaskValue(sched, func() int { return 2 })
//	chained := task.ThenValue(t, sched, func(p *task.Task[int, struct{}]) int {
//		r, _ := p.Get()
//		return 3 * r.Value()
//	})
//	for !chained.IsFinished() {
//		sched.Poll(0)
//	}
//	r, _ := chained.Get() // r.Value() == 6
package task
