package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S7 "bounded poll": with 10 function tasks, each succeeding on its first
// tick, call poll(3). Expected: return value is 3; queued_count()
// afterwards is 7.
func TestScheduler_BoundedPoll(t *testing.T) {
	sched := NewScheduler()
	for i := 0; i < 10; i++ {
		MakeTaskValue(sched, func() int { return 1 })
	}
	require.Equal(t, 10, sched.QueuedCount())

	finished := sched.Poll(3)
	assert.Equal(t, 3, finished)
	assert.Equal(t, 7, sched.QueuedCount())
}

func TestScheduler_PollZeroDrivesWholeBatch(t *testing.T) {
	sched := NewScheduler()
	for i := 0; i < 5; i++ {
		MakeTaskValue(sched, func() int { return 1 })
	}
	finished := sched.Poll(0)
	assert.Equal(t, 5, finished)
	assert.Equal(t, 0, sched.QueuedCount())
	assert.False(t, sched.HasTasks())
}

// S6 "reference counting": construct a function task, discard the handle,
// poll once. The scheduler's own reference keeps the cell alive and
// advancing regardless of whether the caller retained a Task handle.
func TestScheduler_CompletesWithoutRetainedHandle(t *testing.T) {
	sched := NewScheduler()
	called := false
	MakeTaskValue(sched, func() int {
		called = true
		return 42
	})

	finished := sched.Poll(0)
	assert.Equal(t, 1, finished)
	assert.True(t, called)
	assert.Equal(t, 0, sched.QueuedCount())
}

func TestScheduler_InProgressTasksAreRequeued(t *testing.T) {
	sched := NewScheduler()
	ticks := 0
	body := &countingBody{ticksUntilDone: 3, onTick: func() { ticks++ }}
	newTask(newCell[struct{}, struct{}](sched, body))

	assert.Equal(t, 0, sched.Poll(0))
	assert.Equal(t, 0, sched.Poll(0))
	assert.Equal(t, 1, sched.Poll(0))
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 0, sched.QueuedCount())
}

// countingBody is a minimal Body used to exercise the scheduler's
// requeue-while-InProgress behavior directly, without going through a
// specific adapter.
type countingBody struct {
	ticksUntilDone int
	ticks          int
	onTick         func()
	result         Result[struct{}, struct{}]
}

func (b *countingBody) Tick(Context) Status {
	if b.onTick != nil {
		b.onTick()
	}
	b.ticks++
	if b.ticks < b.ticksUntilDone {
		return StatusInProgress
	}
	b.result = Success[struct{}, struct{}](struct{}{})
	return StatusSuccessful
}

func (b *countingBody) Get() *Result[struct{}, struct{}] {
	return &b.result
}
