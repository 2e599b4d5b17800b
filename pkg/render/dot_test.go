package render

import (
	"strings"
	"testing"

	"github.com/tourbound/tourbound/pkg/matrix"
)

func testMatrix(t *testing.T) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(3, []int{
		0, 1, 4,
		2, 0, 3,
		3, 2, 0,
	})
	if err != nil {
		t.Fatalf("building matrix: %v", err)
	}
	return m
}

func TestToDOT(t *testing.T) {
	m := testMatrix(t)
	dot := ToDOT(m, []int{0, 1, 2, 0}, Options{})

	for _, want := range []string{
		"digraph tour {",
		"0 [fillcolor=gold",
		"0 -> 1 [penwidth=2];",
		"1 -> 2 [penwidth=2];",
		"2 -> 0 [penwidth=2];",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "label=\"1\"") {
		t.Error("cost labels should be absent without ShowCosts")
	}
}

func TestToDOTShowCosts(t *testing.T) {
	m := testMatrix(t)
	dot := ToDOT(m, []int{0, 1, 2, 0}, Options{ShowCosts: true})

	for _, want := range []string{
		`0 -> 1 [penwidth=2, label="1"];`,
		`1 -> 2 [penwidth=2, label="3"];`,
		`2 -> 0 [penwidth=2, label="3"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTAllEdges(t *testing.T) {
	m := testMatrix(t)
	dot := ToDOT(m, []int{0, 1, 2, 0}, Options{AllEdges: true})

	// The three off-tour directed edges appear greyed out.
	for _, want := range []string{
		"0 -> 2 [color=grey80",
		"1 -> 0 [color=grey80",
		"2 -> 1 [color=grey80",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "0 -> 1 [color=grey80") {
		t.Error("tour edges must not be drawn as background arcs")
	}
}
