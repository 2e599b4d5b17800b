package solver

import (
	"math/rand"
	"testing"

	"github.com/tourbound/tourbound/pkg/errors"
	"github.com/tourbound/tourbound/pkg/matrix"
)

// bruteForce enumerates every Hamiltonian cycle from the home city and
// returns the minimum cost. Only usable for small n.
func bruteForce(m *matrix.Matrix) int {
	n := m.Len()
	if n == 1 {
		return 0
	}
	visited := make([]bool, n)
	visited[matrix.Home] = true

	best := Unbounded
	var walk func(last, visitedCount, cost int)
	walk = func(last, visitedCount, cost int) {
		if visitedCount == n {
			if total := cost + m.At(last, matrix.Home); total < best {
				best = total
			}
			return
		}
		for city := 1; city < n; city++ {
			if visited[city] {
				continue
			}
			visited[city] = true
			walk(city, visitedCount+1, cost+m.At(last, city))
			visited[city] = false
		}
	}
	walk(matrix.Home, 1, 0)
	return best
}

// randomMatrix builds a deterministic pseudo-random cost matrix. Asymmetric
// on purpose: cost(i,j) and cost(j,i) are drawn independently.
func randomMatrix(t *testing.T, n int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	costs := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				costs[i*n+j] = 1 + rng.Intn(50)
			}
		}
	}
	m, err := matrix.New(n, costs)
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}
	return m
}

// checkTour verifies that res holds a valid closed tour over m whose listed
// cost matches the edge costs it traverses.
func checkTour(t *testing.T, m *matrix.Matrix, res *Result) {
	t.Helper()
	n := m.Len()
	if len(res.Tour) != n+1 {
		t.Fatalf("tour length = %d, want %d", len(res.Tour), n+1)
	}
	if res.Tour[0] != matrix.Home || res.Tour[n] != matrix.Home {
		t.Fatalf("tour %v must start and end at city %d", res.Tour, matrix.Home)
	}
	seen := make(map[int]bool, n)
	total := 0
	for i := 0; i < n; i++ {
		city := res.Tour[i]
		if seen[city] {
			t.Fatalf("tour %v visits city %d twice", res.Tour, city)
		}
		seen[city] = true
		total += m.At(city, res.Tour[i+1])
	}
	if total != res.Cost {
		t.Fatalf("tour %v traverses cost %d but result claims %d", res.Tour, total, res.Cost)
	}
}

func fourCities(t *testing.T) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(4, []int{
		0, 1, 4, 5,
		2, 0, 3, 1,
		3, 2, 0, 2,
		1, 5, 3, 0,
	})
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}
	return m
}

func TestSolveFourCities(t *testing.T) {
	m := fourCities(t)
	want := bruteForce(m)

	for _, workers := range []int{1, 2, 4} {
		res, err := Solve(m, Options{Workers: workers})
		if err != nil {
			t.Fatalf("Solve(workers=%d): %v", workers, err)
		}
		if res.Cost != want {
			t.Errorf("Solve(workers=%d) cost = %d, want %d", workers, res.Cost, want)
		}
		checkTour(t, m, res)
		if res.Cities != 4 || res.Workers != workers {
			t.Errorf("result metadata = (%d cities, %d workers), want (4, %d)", res.Cities, res.Workers, workers)
		}
		if res.RunID == "" {
			t.Error("result has no run ID")
		}
	}
}

func TestSolveSingleCity(t *testing.T) {
	m, err := matrix.New(1, []int{0})
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}

	res, err := Solve(m, Options{Workers: 3})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Cost != 0 {
		t.Errorf("cost = %d, want 0", res.Cost)
	}
	if len(res.Tour) != 2 || res.Tour[0] != 0 || res.Tour[1] != 0 {
		t.Errorf("tour = %v, want [0 0]", res.Tour)
	}
}

func TestSolveTwoCities(t *testing.T) {
	m, err := matrix.New(2, []int{
		0, 3,
		4, 0,
	})
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}

	res, err := Solve(m, Options{Workers: 2})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Cost != 7 {
		t.Errorf("cost = %d, want 7", res.Cost)
	}
	checkTour(t, m, res)
}

func TestSolveMoreWorkersThanCities(t *testing.T) {
	// Workers beyond the n−1 first moves seed nothing and must park without
	// stalling termination.
	m := fourCities(t)
	want := bruteForce(m)

	res, err := Solve(m, Options{Workers: 8})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Cost != want {
		t.Errorf("cost = %d, want %d", res.Cost, want)
	}
	checkTour(t, m, res)
}

func TestSolveMatchesBruteForce(t *testing.T) {
	for _, tc := range []struct {
		n    int
		seed int64
	}{
		{5, 1},
		{6, 2},
		{7, 3},
		{8, 4},
	} {
		m := randomMatrix(t, tc.n, tc.seed)
		want := bruteForce(m)

		for _, workers := range []int{1, 4} {
			res, err := Solve(m, Options{Workers: workers})
			if err != nil {
				t.Fatalf("Solve(n=%d, workers=%d): %v", tc.n, workers, err)
			}
			if res.Cost != want {
				t.Errorf("Solve(n=%d, workers=%d) cost = %d, want %d", tc.n, workers, res.Cost, want)
			}
			checkTour(t, m, res)
		}
	}
}

func TestSolveInvalidWorkers(t *testing.T) {
	m := fourCities(t)

	_, err := Solve(m, Options{Workers: -1})
	if err == nil {
		t.Fatal("expected error for negative worker count")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidWorkers {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidWorkers)
	}
}

func TestSearchSnapshotAfterRun(t *testing.T) {
	m := randomMatrix(t, 7, 7)
	s, err := NewSearch(m, Options{Workers: 3})
	if err != nil {
		t.Fatalf("NewSearch: %v", err)
	}
	res, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	stats := s.Snapshot()
	if len(stats) != 3 {
		t.Fatalf("snapshot has %d workers, want 3", len(stats))
	}
	var expanded int64
	for _, ws := range stats {
		if ws.State != WorkerHalted {
			t.Errorf("worker %d state = %s, want halted", ws.ID, ws.State)
		}
		expanded += ws.Expanded
	}
	if expanded != res.Stats.Expanded {
		t.Errorf("snapshot expanded = %d, result reports %d", expanded, res.Stats.Expanded)
	}
	if res.Stats.Expanded == 0 {
		t.Error("search expanded nothing")
	}
	if res.Stats.Champions == 0 {
		t.Error("search committed no champion")
	}

	cities, cost, ok := s.Best()
	if !ok {
		t.Fatal("Best reports no champion after a completed run")
	}
	if cost != res.Cost || len(cities) != len(res.Tour) {
		t.Errorf("Best = (%v, %d), result = (%v, %d)", cities, cost, res.Tour, res.Cost)
	}
}
