package driver

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvi-lang/pathway/grid"
	"github.com/arvi-lang/pathway/mapsource"
)

func runBoth(t *testing.T, cfg Config, src mapsource.MapSource) Report {
	t.Helper()
	cfg.RunSequential = true
	cfg.RunParallel = true
	report, err := Run(context.Background(), cfg, src, nil)
	if err != nil && !errors.Is(err, ErrMismatch) {
		t.Fatalf("Run: %v", err)
	}
	return report
}

// S1: 3x3 fully connected grid, (0,0) -> (2,2), expect 2*sqrt(2).
func TestScenarioS1FullyConnected(t *testing.T) {
	src := mapsource.NewOpenSource(3, 3, true)
	report := runBoth(t, Config{Width: 3, Height: 3}, src)
	require.False(t, report.Mismatched)
	require.True(t, report.Sequential.Success)
	require.InDelta(t, 2*grid.Sqrt2, report.Sequential.OptimalCost, 1e-9)
	require.True(t, report.Parallel.Success)
	require.InDelta(t, 2*grid.Sqrt2, report.Parallel.OptimalCost, 1e-9)
}

// S2: 5x5 axial-only grid, (0,0) -> (4,4), expect cost 8.
func TestScenarioS2AxialOnly(t *testing.T) {
	src := mapsource.NewOpenSource(5, 5, false)
	report := runBoth(t, Config{Width: 5, Height: 5}, src)
	require.False(t, report.Mismatched)
	require.InDelta(t, 8.0, report.Sequential.OptimalCost, 1e-9)
	require.InDelta(t, 8.0, report.Parallel.OptimalCost, 1e-9)
}

// S3: 4x4 grid with column 2 walled off from columns 1 and 3; no path.
func TestScenarioS3Wall(t *testing.T) {
	g, err := grid.NewGrid(4, 4)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.SetMask(g.ToID(x, y), 0xFF)
		}
	}
	// Sever every edge crossing the column-1/column-2 and column-2/column-3
	// boundaries, in both directions.
	sever := func(xa, xb int) {
		for y := 0; y < 4; y++ {
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= 4 {
					continue
				}
				a, b := g.ToID(xa, y), g.ToID(xb, ny)
				for dir := 0; dir < 8; dir++ {
					d := grid.Directions[dir]
					if xa+d.DX == xb && y+d.DY == ny {
						g.SetMask(a, g.Mask(a)&^(1<<uint(dir)))
					}
					if xb+d.DX == xa && ny+d.DY == y {
						g.SetMask(b, g.Mask(b)&^(1<<uint(dir)))
					}
				}
			}
		}
	}
	sever(1, 2)
	sever(2, 3)

	seq, err := solveWithGrid(g, g.ToID(0, 0), g.ToID(3, 3))
	require.NoError(t, err)
	require.False(t, seq.Success)

	par, err := parallelSolveWithGrid(g, g.ToID(0, 0), g.ToID(3, 3))
	require.NoError(t, err)
	require.False(t, par.Success)
}

// S4: 1x1 grid, start == target.
func TestScenarioS4SingleCell(t *testing.T) {
	src := mapsource.NewOpenSource(1, 1, true)
	report := runBoth(t, Config{Width: 1, Height: 1}, src)
	require.False(t, report.Mismatched)
	require.True(t, report.Sequential.Success)
	require.Equal(t, 0.0, report.Sequential.OptimalCost)
	require.Equal(t, []struct{ X, Y int }{{0, 0}}, asXY(report.Sequential.Path))
	require.True(t, report.Parallel.Success)
	require.Equal(t, 0.0, report.Parallel.OptimalCost)
}

// S5: 10x10 random grid, both solvers must agree on optimal cost.
func TestScenarioS5RandomAgreement(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 99} {
		src := mapsource.NewRandomSource(10, 10, seed, 0.6)
		report := runBoth(t, Config{Width: 10, Height: 10}, src)
		require.Falsef(t, report.Mismatched, "seed %d: sequential=%+v parallel=%+v", seed, report.Sequential, report.Parallel)
	}
}

// S6: 2x2 grid, only the (0,0)->(1,1) diagonal open.
func TestScenarioS6SingleDiagonal(t *testing.T) {
	g, err := grid.NewGrid(2, 2)
	require.NoError(t, err)
	g.SetMask(g.ToID(0, 0), 1<<uint(grid.SouthEast))
	g.SetMask(g.ToID(1, 1), 1<<uint(grid.NorthWest))

	seq, err := solveWithGrid(g, g.ToID(0, 0), g.ToID(1, 1))
	require.NoError(t, err)
	require.True(t, seq.Success)
	require.InDelta(t, grid.Sqrt2, seq.OptimalCost, 1e-9)
	require.Equal(t, []struct{ X, Y int }{{0, 0}, {1, 1}}, asXY(seq.Path))

	par, err := parallelSolveWithGrid(g, g.ToID(0, 0), g.ToID(1, 1))
	require.NoError(t, err)
	require.True(t, par.Success)
	require.InDelta(t, math.Sqrt2, par.OptimalCost, 1e-9)
}
