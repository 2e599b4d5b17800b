// Package render turns solved tours into Graphviz visualizations.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/tourbound/tourbound/pkg/matrix"
)

// Options configures tour rendering.
type Options struct {
	// ShowCosts labels each tour edge with its travel cost.
	ShowCosts bool

	// AllEdges draws the unused matrix edges as faint background arcs in
	// addition to the tour itself.
	AllEdges bool
}

// ToDOT converts a closed tour over m into Graphviz DOT format. cities must
// be the n+1 sequence produced by a solve, starting and ending at the home
// city. The resulting DOT string can be rendered with [RenderSVG] or
// [RenderPNG].
func ToDOT(m *matrix.Matrix, cities []int, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tour {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("\n")

	for city := 0; city < m.Len(); city++ {
		if city == matrix.Home {
			fmt.Fprintf(&buf, "  %d [fillcolor=gold, label=\"%d\\nhome\"];\n", city, city)
		} else {
			fmt.Fprintf(&buf, "  %d;\n", city)
		}
	}
	buf.WriteString("\n")

	onTour := make(map[[2]int]bool, len(cities))
	for i := 0; i+1 < len(cities); i++ {
		from, to := cities[i], cities[i+1]
		onTour[[2]int{from, to}] = true
		if opts.ShowCosts {
			fmt.Fprintf(&buf, "  %d -> %d [penwidth=2, label=\"%d\"];\n", from, to, m.At(from, to))
		} else {
			fmt.Fprintf(&buf, "  %d -> %d [penwidth=2];\n", from, to)
		}
	}

	if opts.AllEdges {
		buf.WriteString("\n")
		for i := 0; i < m.Len(); i++ {
			for j := 0; j < m.Len(); j++ {
				if i == j || onTour[[2]int{i, j}] {
					continue
				}
				fmt.Fprintf(&buf, "  %d -> %d [color=grey80, arrowsize=0.5];\n", i, j)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
