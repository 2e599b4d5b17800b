package solver_test

import (
	"fmt"

	"github.com/tourbound/tourbound/pkg/matrix"
	"github.com/tourbound/tourbound/pkg/solver"
)

func ExampleSolve() {
	// Four cities with asymmetric travel costs.
	m, _ := matrix.New(4, []int{
		0, 1, 4, 5,
		2, 0, 3, 1,
		3, 2, 0, 2,
		1, 5, 3, 0,
	})

	res, _ := solver.Solve(m, solver.Options{Workers: 1})
	fmt.Println("Tour:", res.Tour)
	fmt.Println("Cost:", res.Cost)
	// Output:
	// Tour: [0 1 2 3 0]
	// Cost: 7
}

func ExampleSolve_parallel() {
	// The reported minimum is independent of the worker count.
	m, _ := matrix.New(4, []int{
		0, 1, 4, 5,
		2, 0, 3, 1,
		3, 2, 0, 2,
		1, 5, 3, 0,
	})

	for _, workers := range []int{1, 2, 4} {
		res, _ := solver.Solve(m, solver.Options{Workers: workers})
		fmt.Printf("%d workers: cost %d\n", workers, res.Cost)
	}
	// Output:
	// 1 workers: cost 7
	// 2 workers: cost 7
	// 4 workers: cost 7
}
