package solver

import (
	"sync"
	"sync/atomic"

	"github.com/tourbound/tourbound/pkg/tour"
)

// Coordinator implements termination detection and dynamic load balancing
// for a fixed set of workers, with no central work queue.
//
// Shared state is one mutex, one condition variable, a count of parked
// workers, and a single staging slot through which a donated half-stack
// travels from donor to recipient. The parked count and a staged flag are
// additionally mirrored in atomics so that busy workers can evaluate the
// donation precondition without touching the mutex; the mutex-guarded state
// remains authoritative and every decision is re-checked under it.
//
// Termination is terminal: once every worker is parked with nothing staged,
// all workers are released for good and the coordinator is not reusable.
type Coordinator struct {
	workers int

	mu   sync.Mutex
	cond *sync.Cond

	// staged holds at most one pending donation; guarded by mu.
	staged *tour.Stack

	// Advisory mirrors for the lock-free fast path. Written only while
	// holding mu (except the terminal parked increment, also under mu).
	parked    atomic.Int32
	hasStaged atomic.Bool
}

// NewCoordinator returns a coordinator for the given fixed worker count.
func NewCoordinator(workers int) *Coordinator {
	c := &Coordinator{workers: workers}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// NeedsWork reports whether some worker is parked waiting and the staging
// slot is free. This is a cheap advisory check; Donate re-validates under
// the mutex before splitting anything.
func (c *Coordinator) NeedsWork() bool {
	return c.parked.Load() > 0 && !c.hasStaged.Load()
}

// Donate splits s by strict alternation and publishes the smaller half into
// the staging slot, waking one parked worker. The donor keeps the larger
// half and continues running.
//
// Returns the number of items donated, or 0 if the preconditions (someone
// parked, staging slot empty) no longer held under the mutex. The caller
// must ensure s.Len() >= 2.
func (c *Coordinator) Donate(s *tour.Stack) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.parked.Load() == 0 || c.staged != nil {
		return 0
	}
	donated := s.Split()
	c.staged = donated
	c.hasStaged.Store(true)
	c.cond.Signal()
	return donated.Len()
}

// Park is called by a worker whose stack is empty. It blocks until either
// work is adopted into s (returns true) or global termination is observed
// (returns false, the worker halts).
//
// If a donation is sitting unclaimed in the staging slot, the caller adopts
// it immediately instead of parking: the last running worker must drain a
// pending donation rather than declare termination, or staged work would be
// lost. If the caller is the last running worker and nothing is staged, the
// search space is exhausted; everyone is marked parked and released.
//
// Wake conditions are re-checked in a loop, so spurious wakeups and
// already-claimed donations simply put the worker back to sleep.
func (c *Coordinator) Park(s *tour.Stack) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.staged != nil {
		s.Adopt(c.staged)
		c.staged = nil
		c.hasStaged.Store(false)
		return true
	}

	if int(c.parked.Load()) == c.workers-1 {
		c.parked.Add(1)
		c.cond.Broadcast()
		return false
	}

	c.parked.Add(1)
	for {
		c.cond.Wait()
		if int(c.parked.Load()) == c.workers {
			return false
		}
		if c.staged != nil {
			s.Adopt(c.staged)
			c.staged = nil
			c.hasStaged.Store(false)
			c.parked.Add(-1)
			return true
		}
	}
}

// Terminated reports whether global termination has been declared.
func (c *Coordinator) Terminated() bool {
	return int(c.parked.Load()) == c.workers
}
