package solver

import (
	"math"
	"sync"

	"github.com/tourbound/tourbound/pkg/tour"
)

// Unbounded is the registry's cost before any complete tour has been
// committed. Partial-tour costs are sums of real matrix entries, so the
// feasibility comparison never overflows against it.
const Unbounded = math.MaxInt

// Registry holds the champion: the best complete closed tour found so far,
// shared by all workers. Reads (pruning bounds) take the read lock and never
// block each other; the rare improvement takes the write lock.
type Registry struct {
	mu       sync.RWMutex
	champion tour.Tour
	cost     int
	found    bool
}

// NewRegistry returns a registry with no champion (cost = Unbounded).
func NewRegistry() *Registry {
	return &Registry{cost: Unbounded}
}

// Bound returns the current champion cost, or Unbounded when no complete
// tour has been committed yet.
func (r *Registry) Bound() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cost
}

// TryCommit offers a complete (but not yet closed) tour to the registry.
// closingCost is the cost of the edge from the tour's last city back home.
//
// The comparison runs twice: once optimistically under the read lock, and
// again under the write lock, because another worker may have improved the
// champion between the two acquisitions. Only the write-locked check
// decides.
//
// The returned bound is the champion cost observed under the read lock,
// before any commit; callers reuse it as their pruning bound for subsequent
// expansions, accepting staleness in exchange for fewer lock acquisitions.
func (r *Registry) TryCommit(t tour.Tour, home, closingCost int) (bound int, improved bool) {
	total := t.Cost() + closingCost

	r.mu.RLock()
	bound = r.cost
	if total >= r.cost {
		r.mu.RUnlock()
		return bound, false
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if total >= r.cost {
		return bound, false
	}
	r.champion = t.Close(home, closingCost)
	r.cost = total
	r.found = true
	return bound, true
}

// Best returns the champion tour and its cost.
// ok is false while no complete tour has been committed.
func (r *Registry) Best() (t tour.Tour, cost int, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.champion, r.cost, r.found
}
