// Package driver wires a mapsource.MapSource to the two pathway solvers,
// runs whichever are requested over the same grid, and cross-checks their
// results. cmd/pathway is the thin CLI on top of it.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/arvi-lang/pathway"
	"github.com/arvi-lang/pathway/grid"
	"github.com/arvi-lang/pathway/mapsource"
)

// ErrConfiguration indicates a fatal, user-correctable configuration
// problem: missing/invalid dimensions or a start/target out of range.
var ErrConfiguration = errors.New("driver: invalid configuration")

// ErrMismatch indicates the sequential and parallel solvers disagreed — an
// invariant violation meaning a solver bug, not bad input.
var ErrMismatch = errors.New("driver: sequential and parallel solvers disagree")

// costTolerance absorbs the non-associativity of floating-point sums of
// 1 and sqrt(2) step costs taken in different orders.
const costTolerance = 1e-6

// Config holds the driver's recognised options.
type Config struct {
	Width, Height int
	BatchWidth    int
	RunSequential bool
	RunParallel   bool
}

// Validate reports a wrapped ErrConfiguration if Width or Height is not
// positive.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrConfiguration, c.Width, c.Height)
	}
	return nil
}

// Report is the driver's output: the grid that was solved, each solver's
// result if it ran, and whether they mismatched.
type Report struct {
	Grid       *grid.Grid
	Sequential *pathway.Result
	Parallel   *pathway.Result
	Mismatched bool
}

// Run prepares a grid from src, runs the requested solvers, and
// cross-checks them. It returns ErrConfiguration for bad Config, a wrapped
// capacity error if the grid is too large to allocate, and ErrMismatch if
// both solvers ran and disagreed. A logger may be nil, in which case
// slog.Default() is used.
func Run(ctx context.Context, cfg Config, src mapsource.MapSource, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	g, err := grid.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return Report{}, fmt.Errorf("driver: preparing grid: %w", err)
	}
	if err := src.Generate(g.Masks()); err != nil {
		return Report{}, fmt.Errorf("driver: generating map: %w", err)
	}
	sx, sy := src.Start()
	tx, ty := src.Target()
	if !g.InRange(sx, sy) || !g.InRange(tx, ty) {
		return Report{}, fmt.Errorf("%w: start/target out of range", ErrConfiguration)
	}
	start, target := g.ToID(sx, sy), g.ToID(tx, ty)

	report := Report{Grid: g}
	if cfg.RunSequential {
		logger.Info("running sequential solver", "width", cfg.Width, "height", cfg.Height)
		res, err := pathway.Solve(g, start, target)
		if err != nil {
			return Report{}, fmt.Errorf("driver: sequential solve: %w", err)
		}
		report.Sequential = &res
	}
	if cfg.RunParallel {
		logger.Info("running parallel solver", "batch_width", cfg.BatchWidth)
		res, err := pathway.ParallelSolve(ctx, g, start, target, pathway.Options{BatchWidth: cfg.BatchWidth})
		if err != nil {
			return Report{}, fmt.Errorf("driver: parallel solve: %w", err)
		}
		report.Parallel = &res
	}

	if report.Sequential != nil && report.Parallel != nil {
		if report.Sequential.Success != report.Parallel.Success {
			report.Mismatched = true
		} else if report.Sequential.Success && !costsAgree(report.Sequential.OptimalCost, report.Parallel.OptimalCost) {
			report.Mismatched = true
		}
		if report.Mismatched {
			logger.Error("solver mismatch",
				"sequential_success", report.Sequential.Success, "sequential_cost", report.Sequential.OptimalCost,
				"parallel_success", report.Parallel.Success, "parallel_cost", report.Parallel.OptimalCost)
			return report, fmt.Errorf("%w: sequential=(%v,%v) parallel=(%v,%v)",
				ErrMismatch, report.Sequential.Success, report.Sequential.OptimalCost,
				report.Parallel.Success, report.Parallel.OptimalCost)
		}
	}

	return report, nil
}

func costsAgree(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff <= costTolerance {
		return true
	}
	return diff <= costTolerance*math.Max(math.Abs(a), math.Abs(b))
}
