package solver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tourbound/tourbound/pkg/matrix"
	"github.com/tourbound/tourbound/pkg/observability"
	"github.com/tourbound/tourbound/pkg/tour"
)

// Result is the outcome of a solve run.
type Result struct {
	// RunID uniquely identifies this run in logs and caches.
	RunID string `json:"run_id"`

	// Tour is the optimal cycle as city indices, length n+1, starting and
	// ending at the home city.
	Tour []int `json:"tour"`

	// Cost is the total cost of the optimal cycle.
	Cost int `json:"cost"`

	// Cities is the problem size n.
	Cities int `json:"cities"`

	// Workers is the number of search goroutines used.
	Workers int `json:"workers"`

	// Duration is the wall-clock search time.
	Duration time.Duration `json:"duration"`

	// Stats aggregates the per-worker search counters.
	Stats Stats `json:"stats"`
}

// Search is one solve run over a single cost matrix. It owns the registry,
// the coordinator, and the per-worker statistics, so isolated instances can
// run side by side (there is no package-level search state).
//
// Create with NewSearch, execute with Run. Snapshot and Best may be called
// from other goroutines while Run is in flight.
type Search struct {
	m    *matrix.Matrix
	opts Options

	runID string
	reg   *Registry
	co    *Coordinator
	stats []*workerStats
}

// NewSearch validates the options and prepares a search over m.
func NewSearch(m *matrix.Matrix, opts Options) (*Search, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := &Search{
		m:     m,
		opts:  opts,
		runID: uuid.NewString(),
		reg:   NewRegistry(),
		co:    NewCoordinator(opts.Workers),
		stats: make([]*workerStats, opts.Workers),
	}
	for i := range s.stats {
		s.stats[i] = &workerStats{}
	}
	return s, nil
}

// RunID returns the unique identifier of this run.
func (s *Search) RunID() string { return s.runID }

// Run executes the search to completion and returns the optimal tour.
//
// All workers are started before Run waits on any of them and every worker
// runs until the coordinator declares global termination; the search is not
// cancellable mid-flight (a vanished worker would falsify termination
// detection, which counts on the fixed worker total).
func (s *Search) Run() (*Result, error) {
	ctx := context.Background()
	hooks := observability.Search()
	n := s.m.Len()
	logger := s.opts.Logger.With("run", shortID(s.runID))

	start := time.Now()
	hooks.OnSearchStart(ctx, s.runID, n, s.opts.Workers)
	logger.Debug("starting search", "cities", n, "workers", s.opts.Workers)

	// A single city is a closed tour of cost zero; there is nothing to
	// search and no first moves to seed.
	if n == 1 {
		res := s.result([]int{matrix.Home, matrix.Home}, 0, time.Since(start))
		hooks.OnSearchComplete(ctx, s.runID, 0, res.Duration)
		return res, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < s.opts.Workers; i++ {
		w := &worker{
			id:    i,
			m:     s.m,
			reg:   s.reg,
			co:    s.co,
			stack: &tour.Stack{},
			stats: s.stats[i],
			bound: Unbounded,
		}
		w.seed(s.opts.Workers)

		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(ctx)
		}()
	}
	wg.Wait()

	best, cost, ok := s.reg.Best()
	if !ok {
		// Unreachable for a valid matrix: every permutation is a feasible
		// cycle, so at least one complete tour is always committed.
		return nil, fmt.Errorf("search terminated without a complete tour")
	}

	res := s.result(best.Cities(), cost, time.Since(start))
	hooks.OnSearchComplete(ctx, s.runID, cost, res.Duration)
	logger.Debug("search complete",
		"cost", cost,
		"expanded", res.Stats.Expanded,
		"pruned", res.Stats.Pruned,
		"donations", res.Stats.Donations,
		"duration", res.Duration)
	return res, nil
}

// Snapshot returns a point-in-time view of every worker's counters.
// Safe to call concurrently with Run.
func (s *Search) Snapshot() []WorkerStat {
	out := make([]WorkerStat, len(s.stats))
	for i, ws := range s.stats {
		out[i] = ws.snapshot(i)
	}
	return out
}

// Best returns the current champion tour and cost, if any complete tour has
// been committed yet. Safe to call concurrently with Run.
func (s *Search) Best() (cities []int, cost int, ok bool) {
	t, cost, ok := s.reg.Best()
	if !ok {
		return nil, 0, false
	}
	return t.Cities(), cost, true
}

func (s *Search) result(cities []int, cost int, elapsed time.Duration) *Result {
	res := &Result{
		RunID:    s.runID,
		Tour:     cities,
		Cost:     cost,
		Cities:   s.m.Len(),
		Workers:  s.opts.Workers,
		Duration: elapsed,
	}
	for _, ws := range s.stats {
		res.Stats.Expanded += ws.expanded.Load()
		res.Stats.Pushed += ws.pushed.Load()
		res.Stats.Pruned += ws.pruned.Load()
		res.Stats.Champions += ws.champions.Load()
		res.Stats.Donations += ws.donations.Load()
	}
	return res
}

// Solve runs a complete search over m with the given options.
// It is shorthand for NewSearch followed by Run.
func Solve(m *matrix.Matrix, opts Options) (*Result, error) {
	s, err := NewSearch(m, opts)
	if err != nil {
		return nil, err
	}
	return s.Run()
}

// shortID truncates a run ID for log output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
