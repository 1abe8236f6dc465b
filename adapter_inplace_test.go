package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the step callback runs each tick until it reports a terminal status; the
// in-place adapter must not call the step again once that happens, and
// finalize must run exactly once.
func TestInPlace_StepsUntilTerminalThenFinalizesOnce(t *testing.T) {
	sched := NewScheduler()
	steps := 0
	finalizeCalls := 0

	tsk := MakeInPlaceTask(
		sched,
		0,
		func(ctx *StepContext[int], cancelRequested bool) Status {
			steps++
			ctx.Data++
			if ctx.Data >= 3 {
				return StatusSuccessful
			}
			return StatusInProgress
		},
		func(ctx *StepContext[int]) Result[int, struct{}] {
			finalizeCalls++
			return Success[int, struct{}](ctx.Data)
		},
	)

	for !tsk.IsFinished() {
		sched.Poll(0)
	}

	assert.Equal(t, 3, steps)
	assert.Equal(t, 1, finalizeCalls)
	require.True(t, tsk.IsSuccessful())
	r, err := tsk.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, r.Value())
}

// the step callback observes cancelRequested and may choose to honor it
// (unlike the future adapter, which cannot).
func TestInPlace_StepObservesCancelRequested(t *testing.T) {
	sched := NewScheduler()

	tsk := MakeInPlaceTask(
		sched,
		0,
		func(ctx *StepContext[int], cancelRequested bool) Status {
			if cancelRequested {
				return StatusCanceled
			}
			ctx.Data++
			return StatusInProgress
		},
		func(ctx *StepContext[int]) Result[int, struct{}] {
			return Success[int, struct{}](ctx.Data)
		},
	)

	sched.Poll(0)
	sched.Poll(0)
	assert.True(t, tsk.IsInProgress())

	tsk.TryCancel()
	sched.Poll(0)

	require.True(t, tsk.IsCanceled())
	r, err := tsk.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Value())
}
