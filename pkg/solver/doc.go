// Package solver implements an exact solver for the asymmetric traveling
// salesman problem using parallel branch-and-bound depth-first search.
//
// The search runs on a fixed pool of worker goroutines, one per requested
// worker. Each worker owns an explicit work stack of pending tour
// extensions and runs an iterative DFS loop: pop an entry, extend the tour,
// prune against the shared best-tour bound, push feasible children, or
// offer a complete tour to the registry. No recursion, no central work
// queue.
//
// Three pieces of shared state coordinate the workers:
//
//   - Registry: the best complete tour found so far, guarded by a
//     reader/writer lock with a double-checked commit path. Workers prune
//     against a deliberately stale snapshot of its bound, trading a little
//     extra work for much less lock traffic. Every candidate is re-validated
//     under the write lock at commit time, so the final answer is exact.
//
//   - Coordinator: termination detection and dynamic load balancing. A
//     worker with two or more pending items donates half its stack (split by
//     strict alternation) to a single staging slot whenever another worker is
//     parked waiting; the last worker to run out of work with nothing staged
//     declares global termination and releases everyone.
//
//   - Per-worker statistics, readable while the search runs (Snapshot) for
//     progress display.
//
// The reported optimum is independent of the worker count.
//
// # Usage
//
//	m, _ := matrix.ReadFile("cities.txt")
//	res, err := solver.Solve(m, solver.Options{Workers: 4})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Tour, res.Cost)
package solver
