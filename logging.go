package task

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// logDebug emits a structured debug event through the scheduler's
// optional logger. A nil logger (the default; see WithLogger) makes this
// a no-op, mirroring the teacher's nil-safe global-logger pattern.
func (s *Scheduler) logDebug(msg string, fields func(*logiface.Builder[*stumpy.Event]) *logiface.Builder[*stumpy.Event]) {
	if s.logger == nil {
		return
	}
	b := s.logger.Debug()
	if fields != nil {
		b = fields(b)
	}
	b.Log(msg)
}

// logErr emits a structured error event through the scheduler's optional
// logger, used by the future adapter when the external producer it polls
// reports an error (including a panic recovered by RunFuture).
func (s *Scheduler) logErr(msg string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Err().Err(err).Log(msg)
}
