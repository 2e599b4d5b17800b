package solver

import (
	"sync"
	"testing"

	"github.com/tourbound/tourbound/pkg/tour"
)

// completeTour builds a 3-city tour 0→1→2 with the given accumulated cost.
func completeTour(cost int) tour.Tour {
	return tour.Start(0, 3).Extend(1, cost/2).Extend(2, cost-cost/2)
}

func TestRegistryStartsUnbounded(t *testing.T) {
	r := NewRegistry()

	if r.Bound() != Unbounded {
		t.Errorf("Bound = %d, want Unbounded", r.Bound())
	}
	if _, _, ok := r.Best(); ok {
		t.Error("Best should report no champion before any commit")
	}
}

func TestTryCommitImproves(t *testing.T) {
	r := NewRegistry()

	bound, improved := r.TryCommit(completeTour(10), 0, 2)
	if !improved {
		t.Fatal("first commit should improve")
	}
	if bound != Unbounded {
		t.Errorf("bound snapshot = %d, want Unbounded (pre-commit value)", bound)
	}
	if r.Bound() != 12 {
		t.Errorf("Bound = %d, want 12", r.Bound())
	}

	best, cost, ok := r.Best()
	if !ok {
		t.Fatal("Best should report a champion")
	}
	if cost != 12 {
		t.Errorf("champion cost = %d, want 12", cost)
	}
	// Champion is closed: home city appended.
	if got := best.String(); got != "0 1 2 0" {
		t.Errorf("champion = %q, want %q", got, "0 1 2 0")
	}
	if best.Len() != 4 {
		t.Errorf("champion Len = %d, want 4", best.Len())
	}
}

func TestTryCommitRejectsWorseAndEqual(t *testing.T) {
	r := NewRegistry()
	r.TryCommit(completeTour(10), 0, 2) // champion cost 12

	if _, improved := r.TryCommit(completeTour(20), 0, 2); improved {
		t.Error("worse tour should not replace champion")
	}
	if _, improved := r.TryCommit(completeTour(10), 0, 2); improved {
		t.Error("equal-cost tour should not replace champion")
	}
	if r.Bound() != 12 {
		t.Errorf("Bound = %d, want 12 after rejected commits", r.Bound())
	}
}

func TestTryCommitBoundSnapshotIsPreCommit(t *testing.T) {
	r := NewRegistry()
	r.TryCommit(completeTour(10), 0, 2) // champion cost 12

	bound, improved := r.TryCommit(completeTour(6), 0, 2) // total 8, improves
	if !improved {
		t.Fatal("better tour should improve")
	}
	if bound != 12 {
		t.Errorf("bound snapshot = %d, want 12 (champion before this commit)", bound)
	}
}

func TestTryCommitConcurrent(t *testing.T) {
	r := NewRegistry()

	// Concurrent submissions with distinct costs must leave the champion at
	// the minimum regardless of interleaving.
	costs := []int{30, 14, 22, 8, 26, 8, 40, 12}
	var wg sync.WaitGroup
	for _, c := range costs {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			r.TryCommit(completeTour(c), 0, 2)
		}(c)
	}
	wg.Wait()

	if r.Bound() != 10 {
		t.Errorf("Bound = %d, want 10 (minimum submission 8 + closing 2)", r.Bound())
	}
}
