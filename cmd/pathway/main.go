// Command pathway runs the sequential and/or parallel A* solvers over a
// generated grid and reports whether they agree.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/arvi-lang/pathway/driver"
	"github.com/arvi-lang/pathway/mapsource"
	"github.com/arvi-lang/pathway/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("pathway", flag.ContinueOnError)
	width := fs.Int("width", 0, "grid width (required)")
	height := fs.Int("height", 0, "grid height (required)")
	inputModule := fs.String("input-module", "random", "map source: random or open")
	batchWidth := fs.Int("batch-width", 0, "parallel solver batch width K (0 = default)")
	seed := fs.Int64("seed", 0, "random seed for the random input module (0 = time-based)")
	edgeProb := fs.Float64("edge-probability", 0.6, "edge-open probability for the random input module")
	diagonals := fs.Bool("diagonals", true, "allow diagonal steps for the open input module")
	sequentialOnly := fs.Bool("sequential-only", false, "run only the sequential solver")
	parallelOnly := fs.Bool("parallel-only", false, "run only the parallel solver")
	pngOut := fs.String("png", "", "optional path to write a PNG of the solution")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var src mapsource.MapSource
	switch *inputModule {
	case "random":
		src = mapsource.NewRandomSource(*width, *height, *seed, *edgeProb)
	case "open":
		src = mapsource.NewOpenSource(*width, *height, *diagonals)
	default:
		fmt.Fprintf(stderr, "pathway: unknown input-module %q (want random or open)\n", *inputModule)
		return 2
	}

	cfg := driver.Config{
		Width:         *width,
		Height:        *height,
		BatchWidth:    *batchWidth,
		RunSequential: !*parallelOnly,
		RunParallel:   !*sequentialOnly,
	}

	report, err := driver.Run(context.Background(), cfg, src, logger)
	if err != nil {
		if errors.Is(err, driver.ErrConfiguration) {
			fmt.Fprintln(stderr, err)
			return 2
		}
		if errors.Is(err, driver.ErrMismatch) {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	res := report.Sequential
	if res == nil {
		res = report.Parallel
	}
	if res != nil {
		if printErr := render.PrintSolution(stdout, *res); printErr != nil {
			fmt.Fprintln(stderr, printErr)
			return 1
		}
		fmt.Fprintf(stdout, "optimal cost: %.3f\n", res.OptimalCost)
	}

	if *pngOut != "" && res != nil && res.Success && report.Grid != nil {
		f, err := os.Create(*pngOut)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer f.Close()
		if err := render.WritePNG(f, report.Grid, *res, 8); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	return 0
}
