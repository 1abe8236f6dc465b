package task

import (
	"sync"
	"sync/atomic"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Scheduler owns the set of runnable cells and advances them in batches via
// Poll. It is the attach point for continuations: a continuation's cell is
// posted to whichever Scheduler its constructor was given, which may differ
// from the predecessor's.
//
// Poll is safe to call from a single goroutine per Scheduler at a time;
// calling it from two goroutines concurrently is undefined, matching
// spec.md §4.5. Post (via task construction or a combinator) and TryCancel
// are safe to call from any goroutine.
type Scheduler struct {
	mu       sync.Mutex
	runnable []erasedCell

	queued atomic.Int64 // parked, not currently being ticked
	ticked atomic.Int64 // currently being ticked by an in-flight Poll

	logger *logiface.Logger[*stumpy.Event]
}

// NewScheduler constructs a Scheduler with no runnable cells.
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	cfg := resolveSchedulerOptions(opts)
	return &Scheduler{logger: cfg.logger}
}

// post pushes a cell onto the runnable list. Called by cell construction and
// by the continuation machinery; never called directly by user code.
func (s *Scheduler) post(c erasedCell) {
	s.mu.Lock()
	s.runnable = append(s.runnable, c)
	s.mu.Unlock()
	s.queued.Add(1)
}

// Poll moves the runnable list out under lock, ticks each cell once in
// insertion order, and re-enqueues those still InProgress. It returns the
// number of cells that reached a terminal state during this call.
//
// If max > 0, Poll stops ticking once that many cells have finished; the
// remaining cells in the drained batch are re-enqueued without being
// ticked (spec.md §4.5).
func (s *Scheduler) Poll(max int) int {
	s.mu.Lock()
	batch := s.runnable
	s.runnable = nil
	s.mu.Unlock()

	s.queued.Add(-int64(len(batch)))
	s.ticked.Add(int64(len(batch)))

	finished := 0
	var requeue []erasedCell

	for _, c := range batch {
		if max > 0 && finished >= max {
			s.ticked.Add(-1)
			requeue = append(requeue, c)
			continue
		}

		status := c.tick()
		s.ticked.Add(-1)

		if status.IsTerminal() {
			finished++
			c.release() // drop the runnable-list reference (spec.md invariant 2)
		} else {
			requeue = append(requeue, c)
		}
	}

	if len(requeue) > 0 {
		s.mu.Lock()
		s.runnable = append(requeue, s.runnable...)
		s.mu.Unlock()
		s.queued.Add(int64(len(requeue)))
	}

	s.logDebug("poll batch drained", func(b *logiface.Builder[*stumpy.Event]) *logiface.Builder[*stumpy.Event] {
		return b.Int("drained", len(batch)).Int("finished", finished)
	})

	return finished
}

// QueuedCount is the sum of the parked list length and the number of cells
// currently being ticked by an in-flight Poll call (spec.md §4.5,
// invariant 8).
func (s *Scheduler) QueuedCount() int {
	return int(s.queued.Load() + s.ticked.Load())
}

// HasTasks reports whether QueuedCount is non-zero.
func (s *Scheduler) HasTasks() bool {
	return s.QueuedCount() > 0
}
