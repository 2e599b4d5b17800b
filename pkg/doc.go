// Package pkg provides the core libraries for Tourbound exact tour solving.
//
// # Overview
//
// Tourbound finds minimum-cost round trips for the asymmetric traveling
// salesperson problem. The pkg directory is organized into five areas:
//
//  1. [matrix] - Cost matrix type, validation, and text format I/O
//  2. [tour] - Immutable tour values and per-worker work stacks
//  3. [solver] - The parallel branch-and-bound search engine
//  4. [cache] - Local result caching keyed by matrix hash
//  5. [render] - Graphviz drawings of solved tours
//
// # Architecture
//
// The typical data flow:
//
//	matrix file
//	     ↓
//	[matrix] package (parse + validate)
//	     ↓
//	[solver] package (parallel depth-first branch and bound)
//	     ↓
//	optimal tour + cost
//	     ↓
//	[render] package (optional SVG/PNG/DOT output)
//
// # Quick Start
//
// Solve a matrix and print the optimal tour:
//
//	m, err := matrix.ReadFile("cities.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := solver.Solve(m, solver.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Tour, res.Cost)
//
// The search is exact: the reported cost is always the true minimum,
// independent of the worker count.
//
// Supporting packages: [errors] for structured error codes,
// [observability] for optional instrumentation hooks, and [buildinfo] for
// ldflags-injected version information.
//
// [matrix]: https://pkg.go.dev/github.com/tourbound/tourbound/pkg/matrix
// [tour]: https://pkg.go.dev/github.com/tourbound/tourbound/pkg/tour
// [solver]: https://pkg.go.dev/github.com/tourbound/tourbound/pkg/solver
// [cache]: https://pkg.go.dev/github.com/tourbound/tourbound/pkg/cache
// [render]: https://pkg.go.dev/github.com/tourbound/tourbound/pkg/render
// [errors]: https://pkg.go.dev/github.com/tourbound/tourbound/pkg/errors
// [observability]: https://pkg.go.dev/github.com/tourbound/tourbound/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/tourbound/tourbound/pkg/buildinfo
package pkg
