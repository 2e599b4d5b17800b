package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tourbound/tourbound/pkg/errors"
)

// Read parses a cost matrix from r in the package text format: the city
// count n followed by n×n whitespace-separated integers in row-major order.
// The result is validated with the same rules as New.
func Read(r io.Reader) (*Matrix, error) {
	br := bufio.NewReader(r)

	var n int
	if _, err := fmt.Fscan(br, &n); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMatrix, err, "read city count")
	}
	if n < 1 {
		return nil, errors.New(errors.ErrCodeInvalidMatrix, "city count must be at least 1, got %d", n)
	}

	costs := make([]int, n*n)
	for i := range costs {
		if _, err := fmt.Fscan(br, &costs[i]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMatrix, err, "read cost entry %d of %d", i+1, n*n)
		}
	}

	return New(n, costs)
}

// ReadFile reads and parses the cost matrix stored at path.
func ReadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "matrix file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Write writes the matrix to w in its text format.
func Write(w io.Writer, m *Matrix) error {
	_, err := io.WriteString(w, m.String())
	return err
}
