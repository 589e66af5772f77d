package pathway

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/arvi-lang/pathway/grid"
)

// Options tunes the parallel solver.
type Options struct {
	// BatchWidth is K, the number of open-set entries extracted per round.
	// Zero selects a default proportional to GOMAXPROCS.
	BatchWidth int
	// Parallelism bounds how many expand/relax goroutines run at once per
	// phase. Zero selects GOMAXPROCS.
	Parallelism int
	// Metrics, if non-nil, is updated as the round loop progresses.
	Metrics *Metrics
}

func (o Options) withDefaults() Options {
	if o.BatchWidth <= 0 {
		o.BatchWidth = runtime.GOMAXPROCS(0) * 4
		if o.BatchWidth < 1 {
			o.BatchWidth = 1
		}
	}
	if o.Parallelism <= 0 {
		o.Parallelism = runtime.GOMAXPROCS(0)
		if o.Parallelism < 1 {
			o.Parallelism = 1
		}
	}
	if o.Metrics == nil {
		o.Metrics = NewMetrics(nil)
	}
	return o
}

// candidate is a relaxation proposal generated while expanding a batch:
// "cell v is reachable from pred at cost g".
type candidate struct {
	v    int
	g    float64
	pred int32
}

// ParallelSolve runs the batch A* solver: each round extracts up to
// Options.BatchWidth minimum-f entries, expands them across
// a bounded worker pool, deduplicates the resulting candidates, relaxes
// them against the shared arena, and reinserts improved cells. It
// terminates as soon as the target is extracted as the batch's minimum-f
// entry and the remaining open set cannot beat it — see DESIGN.md for why
// that check, not "target popped", is the correct termination rule.
func ParallelSolve(ctx context.Context, g *grid.Grid, start, target int, opts Options) (Result, error) {
	opts = opts.withDefaults()
	a, err := newArena(g.N())
	if err != nil {
		return Result{}, err
	}
	ex, ey := g.ToXY(target)
	a.seed(start)

	fr := newFrontier()
	sx, sy := g.ToXY(start)
	fr.push(openEntry{id: start, f: grid.Octile(sx, sy, ex, ey), version: 1})

	expanded := 0
	rounds := 0

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrCancelled, err)
		}

		fr.mergeStaging()
		opts.Metrics.OpenSetSize.Set(float64(fr.size()))

		batch := fr.extractTopK(opts.BatchWidth, a)
		if len(batch) == 0 {
			if fr.empty() {
				return Result{Success: false, NodesExpanded: expanded, Rounds: rounds}, nil
			}
			continue
		}
		rounds++
		opts.Metrics.Rounds.Inc()

		// batch is sorted ascending by f (extractTopK pops a min-heap in
		// order), so batch[0] is the batch minimum by construction.
		if batch[0].id == target && batch[0].f <= fr.peekMinF() {
			cur := a.get(target)
			return Result{
				Success:       true,
				OptimalCost:   cur.g,
				Path:          reconstructPoints(g, a, target),
				NodesExpanded: expanded,
				Rounds:        rounds,
			}, nil
		}

		toExpand := make([]openEntry, 0, len(batch))
		for _, e := range batch {
			if e.id == target {
				// Not yet provably optimal: keep it open for a later round
				// instead of finalising it early.
				fr.push(e)
				continue
			}
			if a.close(e.id) {
				toExpand = append(toExpand, e)
			}
		}
		expanded += len(toExpand)
		opts.Metrics.NodesExpanded.Add(float64(len(toExpand)))

		candidates, err := expandBatch(ctx, g, a, toExpand, opts.Parallelism)
		if err != nil {
			return Result{}, fmt.Errorf("expanding round %d: %w", rounds, ErrDevice)
		}
		candidates = dedupCandidates(candidates)
		if err := relaxAndReinsert(ctx, a, fr, g, ex, ey, candidates, opts.Parallelism); err != nil {
			return Result{}, fmt.Errorf("relaxing round %d: %w", rounds, ErrDevice)
		}
	}
}

// expandBatch enumerates neighbours of every node in toExpand concurrently,
// bounded by parallelism in-flight goroutines at a time.
func expandBatch(ctx context.Context, g *grid.Grid, a *arena, toExpand []openEntry, parallelism int) ([]candidate, error) {
	results := make([][]candidate, len(toExpand))
	grp, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(parallelism))

	for i, e := range toExpand {
		i, e := i, e
		if err := sem.Acquire(gctx, 1); err != nil {
			return nil, err
		}
		grp.Go(func() error {
			defer sem.Release(1)
			cur := a.get(e.id)
			var buf []grid.Neighbor
			buf = g.Neighbors(e.id, buf[:0])
			local := make([]candidate, 0, len(buf))
			for _, nb := range buf {
				local = append(local, candidate{v: nb.ID, g: cur.g + nb.Cost, pred: int32(e.id)})
			}
			results[i] = local
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	flat := make([]candidate, 0, total)
	for _, r := range results {
		flat = append(flat, r...)
	}
	return flat, nil
}

// dedupCandidates sorts candidates by (v, g, pred) and keeps the minimum-g
// entry per v, breaking ties deterministically by predecessor id.
func dedupCandidates(cs []candidate) []candidate {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].v != cs[j].v {
			return cs[i].v < cs[j].v
		}
		if cs[i].g != cs[j].g {
			return cs[i].g < cs[j].g
		}
		return cs[i].pred < cs[j].pred
	})
	out := cs[:0]
	for i, c := range cs {
		if i == 0 || c.v != out[len(out)-1].v {
			out = append(out, c)
		}
	}
	return out
}

// relaxAndReinsert applies each deduplicated candidate to the arena
// concurrently; winners are staged into the frontier for the next round's
// merge.
func relaxAndReinsert(ctx context.Context, a *arena, fr *frontier, g *grid.Grid, ex, ey int, cs []candidate, parallelism int) error {
	grp, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(parallelism))

	for _, c := range cs {
		c := c
		if err := sem.Acquire(gctx, 1); err != nil {
			return err
		}
		grp.Go(func() error {
			defer sem.Release(1)
			rec, installed := a.tryRelax(c.v, c.g, c.pred)
			if !installed {
				return nil
			}
			nx, ny := g.ToXY(c.v)
			fr.stage(openEntry{id: c.v, f: rec.g + grid.Octile(nx, ny, ex, ey), version: rec.version})
			return nil
		})
	}
	return grp.Wait()
}
