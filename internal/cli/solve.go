package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tourbound/tourbound/pkg/cache"
	"github.com/tourbound/tourbound/pkg/matrix"
	"github.com/tourbound/tourbound/pkg/solver"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		workers      int
		noCache      bool
		jsonOut      bool
		showProgress bool
	)

	cmd := &cobra.Command{
		Use:   "solve <matrix-file>",
		Short: "Find the optimal tour for a cost matrix",
		Long: `Find the minimum-cost round trip visiting every city exactly once.

The input is a text file with the city count n on the first line followed by
n×n travel costs in row-major order. Use "-" to read from stdin.

The search is exact: the reported tour is always a true optimum, regardless
of the worker count. Results are cached locally, keyed by the matrix, so
solving the same problem again is instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cmd.Flags().Changed("workers") && cfg.Workers > 0 {
				workers = cfg.Workers
			}
			if cfg.NoCache {
				noCache = true
			}
			return c.runSolve(cmd.Context(), args[0], solveParams{
				workers:      workers,
				noCache:      noCache,
				jsonOut:      jsonOut,
				showProgress: showProgress,
			})
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of search workers (default: one per CPU)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "show live per-worker progress")

	return cmd
}

type solveParams struct {
	workers      int
	noCache      bool
	jsonOut      bool
	showProgress bool
}

// runSolve loads the matrix, consults the cache, and runs the search.
func (c *CLI) runSolve(ctx context.Context, input string, params solveParams) error {
	m, err := readMatrix(input)
	if err != nil {
		return err
	}

	var (
		res    *solver.Result
		cached bool
	)
	if params.showProgress {
		res, cached, err = c.solveLive(ctx, m, params.workers, params.noCache, true)
	} else {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Searching %d cities...", m.Len()))
		spinner.Start()
		res, cached, err = c.solveLive(ctx, m, params.workers, params.noCache, false)
		if err != nil {
			spinner.StopWithError("Search failed")
			return err
		}
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	return printResult(res, cached, params.jsonOut)
}

// solveCached solves m, serving and populating the result cache.
func (c *CLI) solveCached(ctx context.Context, m *matrix.Matrix, workers int, noCache bool) (*solver.Result, bool, error) {
	return c.solveLive(ctx, m, workers, noCache, false)
}

// solveLive is solveCached with an optional live progress view.
func (c *CLI) solveLive(ctx context.Context, m *matrix.Matrix, workers int, noCache, live bool) (*solver.Result, bool, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, false, fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	key := cache.ResultKey(m)
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		var res solver.Result
		if err := json.Unmarshal(data, &res); err == nil {
			c.Logger.Debug("result served from cache", "key", key)
			return &res, true, nil
		}
	}

	search, err := solver.NewSearch(m, solver.Options{
		Workers: workers,
		Logger:  c.Logger,
	})
	if err != nil {
		return nil, false, err
	}

	p := newProgress(c.Logger)
	var res *solver.Result
	if live {
		res, err = runWithProgress(search)
	} else {
		res, err = search.Run()
	}
	if err != nil {
		return nil, false, err
	}
	p.done(fmt.Sprintf("Solved %d cities with %d workers", res.Cities, res.Workers))

	if data, err := json.Marshal(res); err == nil {
		if err := store.Set(ctx, key, data, cache.ResultTTL); err != nil {
			c.Logger.Debug("caching result failed", "err", err)
		}
	}
	return res, false, nil
}

// readMatrix loads a cost matrix from a file, or from stdin when path is "-".
func readMatrix(path string) (*matrix.Matrix, error) {
	if path == "-" {
		return matrix.Read(os.Stdin)
	}
	return matrix.ReadFile(path)
}

// printResult writes the final result to stdout.
func printResult(res *solver.Result, cached, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printSuccess("Optimal tour found")
	printKeyValue("Tour", fmtTour(res.Tour))
	printKeyValue("Cost", StyleNumber.Render(strconv.Itoa(res.Cost)))
	printKeyValue("Cities", strconv.Itoa(res.Cities))
	printKeyValue("Workers", strconv.Itoa(res.Workers))
	printKeyValue("Duration", res.Duration.String())
	printSearchStats(res.Stats.Expanded, res.Stats.Pruned, res.Stats.Donations, cached)
	return nil
}

// fmtTour renders a city sequence as "0 → 1 → 3 → 2 → 0".
func fmtTour(cities []int) string {
	parts := make([]string, len(cities))
	for i, city := range cities {
		parts[i] = strconv.Itoa(city)
	}
	return strings.Join(parts, " "+iconArrow+" ")
}
