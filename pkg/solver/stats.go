package solver

import "sync/atomic"

// WorkerState describes what a worker is currently doing.
type WorkerState int32

const (
	// WorkerRunning means the worker is expanding its own stack.
	WorkerRunning WorkerState = iota
	// WorkerParked means the worker is blocked waiting for donated work.
	WorkerParked
	// WorkerHalted means the worker has observed global termination.
	WorkerHalted
)

// String returns a short human-readable state name.
func (s WorkerState) String() string {
	switch s {
	case WorkerRunning:
		return "running"
	case WorkerParked:
		return "parked"
	case WorkerHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// WorkerStat is a point-in-time snapshot of one worker's counters.
type WorkerStat struct {
	ID        int
	State     WorkerState
	StackLen  int
	Expanded  int64 // items popped and extended
	Pushed    int64 // feasible children pushed
	Pruned    int64 // candidate extensions discarded by the bound
	Champions int64 // successful best-tour commits
	Donations int64 // half-stacks handed to idle workers
}

// Stats aggregates the counters of all workers for a finished run.
type Stats struct {
	Expanded  int64
	Pushed    int64
	Pruned    int64
	Champions int64
	Donations int64
}

// workerStats holds one worker's live counters. The owning worker writes,
// Snapshot reads concurrently; everything is atomic.
type workerStats struct {
	state     atomic.Int32
	stackLen  atomic.Int64
	expanded  atomic.Int64
	pushed    atomic.Int64
	pruned    atomic.Int64
	champions atomic.Int64
	donations atomic.Int64
}

func (w *workerStats) snapshot(id int) WorkerStat {
	return WorkerStat{
		ID:        id,
		State:     WorkerState(w.state.Load()),
		StackLen:  int(w.stackLen.Load()),
		Expanded:  w.expanded.Load(),
		Pushed:    w.pushed.Load(),
		Pruned:    w.pruned.Load(),
		Champions: w.champions.Load(),
		Donations: w.donations.Load(),
	}
}
