package driver

import (
	"context"

	"github.com/arvi-lang/pathway"
	"github.com/arvi-lang/pathway/grid"
)

func solveWithGrid(g *grid.Grid, start, target int) (pathway.Result, error) {
	return pathway.Solve(g, start, target)
}

func parallelSolveWithGrid(g *grid.Grid, start, target int) (pathway.Result, error) {
	return pathway.ParallelSolve(context.Background(), g, start, target, pathway.Options{})
}

func asXY(path []pathway.Point) []struct{ X, Y int } {
	out := make([]struct{ X, Y int }, len(path))
	for i, p := range path {
		out[i] = struct{ X, Y int }{X: p.X, Y: p.Y}
	}
	return out
}
