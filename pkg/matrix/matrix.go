package matrix

import (
	"fmt"
	"strings"

	"github.com/tourbound/tourbound/pkg/errors"
)

// Home is the index of the salesperson's home city. Every tour starts and
// ends here.
const Home = 0

// Matrix is an immutable n×n table of travel costs backed by a flat
// row-major slice. The zero value is not usable; construct with New or one
// of the readers.
type Matrix struct {
	n     int
	costs []int
}

// New validates the given row-major cost table and wraps it in a Matrix.
// The slice is copied, so the caller may reuse it.
//
// Validation rules:
//   - n ≥ 1 and len(costs) == n*n
//   - costs[i][i] == 0 for all i
//   - costs[i][j] > 0 for all i ≠ j
func New(n int, costs []int) (*Matrix, error) {
	if n < 1 {
		return nil, errors.New(errors.ErrCodeInvalidMatrix, "city count must be at least 1, got %d", n)
	}
	if len(costs) != n*n {
		return nil, errors.New(errors.ErrCodeInvalidMatrix, "expected %d cost entries for %d cities, got %d", n*n, n, len(costs))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := costs[i*n+j]
			switch {
			case i == j && c != 0:
				return nil, errors.New(errors.ErrCodeInvalidMatrix, "cost(%d,%d) must be 0, got %d", i, j, c)
			case i != j && c <= 0:
				return nil, errors.New(errors.ErrCodeInvalidMatrix, "cost(%d,%d) must be positive, got %d", i, j, c)
			}
		}
	}
	m := &Matrix{n: n, costs: make([]int, len(costs))}
	copy(m.costs, costs)
	return m, nil
}

// Len returns the number of cities.
func (m *Matrix) Len() int { return m.n }

// At returns the cost of traveling from city i to city j.
// Indices are not bounds-checked beyond the slice access itself.
func (m *Matrix) At(i, j int) int { return m.costs[i*m.n+j] }

// String renders the matrix in its text format with aligned columns,
// suitable both for display and for re-parsing with Read.
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%2d", m.costs[i*m.n+j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
