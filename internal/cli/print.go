package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// printCommand creates the print command for inspecting a cost matrix.
func (c *CLI) printCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print <matrix-file>",
		Short: "Parse and display a cost matrix",
		Long: `Parse a cost matrix file, validate it, and display it with aligned
columns. Use "-" to read from stdin.

This is useful for checking an input file before starting a long solve.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(args[0])
			if err != nil {
				return err
			}

			printKeyValue("Cities", strconv.Itoa(m.Len()))
			printKeyValue("Tours", tourCount(m.Len()))
			fmt.Println()
			fmt.Print(m.String())
			return nil
		},
	}
}

// tourCount describes the size of the search space: (n−1)! distinct cycles
// from the home city.
func tourCount(n int) string {
	f := int64(1)
	for i := 2; i <= n-1; i++ {
		next := f * int64(i)
		if next/int64(i) != f {
			return fmt.Sprintf("(%d-1)!, more than fit in an int64", n)
		}
		f = next
	}
	return fmt.Sprintf("%d possible", f)
}
