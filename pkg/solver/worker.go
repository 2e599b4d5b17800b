package solver

import (
	"context"

	"github.com/tourbound/tourbound/pkg/matrix"
	"github.com/tourbound/tourbound/pkg/observability"
	"github.com/tourbound/tourbound/pkg/tour"
)

// worker runs the iterative depth-first search over its own work stack.
type worker struct {
	id    int
	m     *matrix.Matrix
	reg   *Registry
	co    *Coordinator
	stack *tour.Stack
	stats *workerStats

	// bound is the pruning bound: a snapshot of the registry's champion
	// cost, refreshed once per completed-tour check rather than per
	// neighbor. It may lag behind concurrent improvements; stale bounds
	// admit extra work but never discard the optimum, which is re-validated
	// at commit time.
	bound int
}

// seed pushes this worker's block of first moves from the home city. The
// n−1 non-home cities are divided into contiguous slices whose sizes differ
// by at most one, so the search space is covered exactly once with no
// startup coordination.
func (w *worker) seed(workers int) {
	n := w.m.Len()
	quotient := (n - 1) / workers
	remainder := (n - 1) % workers

	var first, count int
	if w.id < remainder {
		count = quotient + 1
		first = w.id*count + 1
	} else {
		count = quotient
		first = w.id*count + remainder + 1
	}

	// Push in descending order so the lowest assigned city is explored
	// first, matching the fixed traversal order.
	root := tour.Start(matrix.Home, n)
	for city := first + count - 1; city >= first; city-- {
		w.stack.Push(root, city, w.m.At(matrix.Home, city))
	}
	w.stats.stackLen.Store(int64(w.stack.Len()))
}

// run is the worker's main loop. It returns when the coordinator declares
// global termination.
func (w *worker) run(ctx context.Context) {
	n := w.m.Len()
	hooks := observability.Search()

	for {
		if w.stack.Len() >= 2 && w.co.NeedsWork() {
			if donated := w.co.Donate(w.stack); donated > 0 {
				w.stats.donations.Add(1)
				hooks.OnDonation(ctx, w.id, donated)
			}
		} else if w.stack.Empty() {
			w.stats.state.Store(int32(WorkerParked))
			hooks.OnWorkerParked(ctx, w.id)
			if !w.co.Park(w.stack) {
				w.stats.state.Store(int32(WorkerHalted))
				hooks.OnWorkerHalted(ctx, w.id)
				return
			}
			w.stats.state.Store(int32(WorkerRunning))
		}

		parent, city, cost, ok := w.stack.Pop()
		if !ok {
			continue
		}
		cur := parent.Extend(city, cost)
		w.stats.expanded.Add(1)

		if cur.Complete(n) {
			w.checkBest(ctx, cur, hooks)
		} else {
			w.expand(cur, n)
		}
		w.stats.stackLen.Store(int64(w.stack.Len()))
	}
}

// checkBest offers a complete tour to the registry and refreshes the
// worker's pruning bound from the snapshot taken inside the commit path.
func (w *worker) checkBest(ctx context.Context, t tour.Tour, hooks observability.SearchHooks) {
	closing := w.m.At(t.Last(), matrix.Home)
	bound, improved := w.reg.TryCommit(t, matrix.Home, closing)
	w.bound = bound
	if improved {
		w.stats.champions.Add(1)
		hooks.OnChampion(ctx, w.id, t.Cost()+closing)
	}
}

// expand pushes every feasible extension of t. Neighbors are evaluated in
// descending city-index order, a fixed tie-break that keeps runs
// reproducible. A neighbor is feasible when it is unvisited and reaching it
// stays under the current pruning bound.
func (w *worker) expand(t tour.Tour, n int) {
	last := t.Last()
	for nbr := n - 1; nbr >= 1; nbr-- {
		if t.Contains(nbr) {
			continue
		}
		edge := w.m.At(last, nbr)
		if t.Cost()+edge < w.bound {
			w.stack.Push(t, nbr, edge)
			w.stats.pushed.Add(1)
		} else {
			w.stats.pruned.Add(1)
		}
	}
}
