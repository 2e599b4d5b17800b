// Package matrix provides the immutable travel-cost matrix consumed by the
// solver.
//
// A Matrix holds the full n×n table of integer travel costs for a problem
// instance. Costs may be asymmetric: the cost of traveling from city i to
// city j is, in general, different from the cost of traveling from j to i.
// The diagonal is always zero and every off-diagonal entry is positive.
//
// Matrices are validated on construction and never mutated afterwards, so a
// single Matrix can be shared by any number of goroutines without
// synchronization.
//
// # Text Format
//
// The on-disk format is the city count followed by n×n whitespace-separated
// integers in row-major order:
//
//	4
//	0 1 4 5
//	2 0 3 1
//	3 2 0 2
//	1 5 3 0
//
// Read and ReadFile parse this format; Write and String produce it.
package matrix
