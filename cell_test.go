package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Invariant 2: "the cell's reference count is ≥ 1 for every live handle
// plus 1 while the cell is enqueued in the scheduler's runnable list."
func TestCell_RefCountTracksHandleAndRunnableList(t *testing.T) {
	sched := NewScheduler()
	body := &countingBody{ticksUntilDone: 2}
	tsk := newTask(newCell[struct{}, struct{}](sched, body))

	// One live handle, plus the scheduler's runnable-list reference.
	assert.EqualValues(t, 2, tsk.c.refCount())

	sched.Poll(0) // still InProgress: runnable-list reference persists
	assert.EqualValues(t, 2, tsk.c.refCount())

	sched.Poll(0) // terminal this tick: the scheduler drops its reference
	assert.True(t, tsk.IsFinished())
	assert.EqualValues(t, 1, tsk.c.refCount())
}

// An already-finished task (the noop adapter's InitialStatus shortcut)
// never gets posted to the scheduler, so it only ever holds the one
// reference for its handle.
func TestCell_RefCountForAlreadyFinishedTask(t *testing.T) {
	sched := NewScheduler()
	tsk := FromValue[int, struct{}](sched, 1)
	assert.EqualValues(t, 1, tsk.c.refCount())
	assert.Equal(t, 0, sched.QueuedCount())
}

// A continuation's clone of its predecessor is released once the
// predecessor is observed terminal and is never read again.
func TestCell_ContinuationReleasesPredecessorClone(t *testing.T) {
	sched := NewScheduler()
	pred := MakeTaskValue(sched, func() int { return 1 })
	chained := ThenValue(pred, sched, func(*Task[int, struct{}]) int { return 2 })

	assert.EqualValues(t, 3, pred.c.refCount()) // handle + scheduler + continuation clone

	sched.Poll(0) // pred finishes; chained observes it and releases the clone
	assert.True(t, pred.IsFinished())
	assert.EqualValues(t, 1, pred.c.refCount())

	sched.Poll(0)
	assert.True(t, chained.IsFinished())
}
