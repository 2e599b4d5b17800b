package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tourbound/tourbound/pkg/render"
)

// Output formats accepted by the render command.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"
)

// renderCommand creates the render command for drawing solved tours.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		workers   int
		noCache   bool
		output    string
		format    string
		showCosts bool
		allEdges  bool
	)

	cmd := &cobra.Command{
		Use:   "render <matrix-file>",
		Short: "Solve a cost matrix and draw the optimal tour",
		Long: `Solve a cost matrix and render the optimal tour as a Graphviz drawing.

The tour is drawn as a directed cycle with the home city highlighted.
Cached solve results are reused, so rendering after a solve is instant.`,
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
			if !cmd.Flags().Changed("show-costs") && cfg.ShowCosts {
				showCosts = true
			}
			if err := validateFormat(format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], renderParams{
				workers:   workers,
				noCache:   noCache,
				output:    output,
				format:    format,
				showCosts: showCosts,
				allEdges:  allEdges,
			})
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of search workers (default: one per CPU)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg, png, dot")
	cmd.Flags().BoolVar(&showCosts, "show-costs", false, "label tour edges with their costs")
	cmd.Flags().BoolVar(&allEdges, "all-edges", false, "draw unused matrix edges as background arcs")

	return cmd
}

type renderParams struct {
	workers   int
	noCache   bool
	output    string
	format    string
	showCosts bool
	allEdges  bool
}

func validateFormat(format string) error {
	switch format {
	case formatSVG, formatPNG, formatDOT:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected svg, png, or dot)", format)
	}
}

// runRender solves the matrix (via the cache when possible) and writes the
// drawing.
func (c *CLI) runRender(ctx context.Context, input string, params renderParams) error {
	m, err := readMatrix(input)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Searching %d cities...", m.Len()))
	spinner.Start()
	res, cached, err := c.solveCached(ctx, m, params.workers, params.noCache)
	if err != nil {
		spinner.StopWithError("Search failed")
		return err
	}
	spinner.Stop()

	dot := render.ToDOT(m, res.Tour, render.Options{
		ShowCosts: params.showCosts,
		AllEdges:  params.allEdges,
	})

	var data []byte
	switch params.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		data, err = render.RenderSVG(dot)
	case formatPNG:
		data, err = render.RenderPNG(dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", params.format, err)
	}

	out := params.output
	if out == "" {
		out = outputName(input, params.format)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Rendered tour with cost %d", res.Cost)
	printFile(out)
	printSearchStats(res.Stats.Expanded, res.Stats.Pruned, res.Stats.Donations, cached)
	return nil
}

// outputName derives the output path from the input path and format.
func outputName(input, format string) string {
	base := filepath.Base(input)
	if input == "-" {
		base = "tour"
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "." + format
}
