package task

import (
	"bytes"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/assert"
)

// exercises the stumpy backend directly, confirming the scheduler's
// diagnostic events (poll batch summaries, future adapter errors) reach a
// real logiface.Logger rather than just a mock.
func TestScheduler_WithLogger_EmitsPollDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	writer := logiface.WriterFunc[*stumpy.Event](func(e *stumpy.Event) error {
		buf.Write(e.Bytes())
		buf.WriteByte('\n')
		return nil
	})
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithTimeField(``)),
		stumpy.L.WithWriter(writer),
	)

	sched := NewScheduler(WithLogger(logger))
	tsk := MakeTaskValue(sched, func() int { return 1 })
	sched.Poll(0)

	assert.True(t, tsk.IsSuccessful())
	assert.Contains(t, buf.String(), "poll batch drained")
	assert.Contains(t, buf.String(), `"drained":"1"`)
}

func TestScheduler_WithLogger_LogsFutureRejection(t *testing.T) {
	var buf bytes.Buffer
	writer := logiface.WriterFunc[*stumpy.Event](func(e *stumpy.Event) error {
		buf.Write(e.Bytes())
		buf.WriteByte('\n')
		return nil
	})
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithTimeField(``)),
		stumpy.L.WithWriter(writer),
	)

	sched := NewScheduler(WithLogger(logger))
	fut, _, reject := NewFuture[int]()
	tsk := MakeTaskFromFuture(sched, fut)

	reject(ErrCanceled)
	sched.Poll(0)

	assert.True(t, tsk.IsFailed())
	assert.Contains(t, buf.String(), "future adapter observed error")
}

// a nil logger (the default) must never panic.
func TestScheduler_NilLoggerIsNoOp(t *testing.T) {
	sched := NewScheduler()
	tsk := MakeTaskValue(sched, func() int { return 1 })
	assert.NotPanics(t, func() { sched.Poll(0) })
	assert.True(t, tsk.IsSuccessful())
}
