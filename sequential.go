package pathway

import (
	"container/heap"

	"github.com/arvi-lang/pathway/grid"
	"github.com/arvi-lang/pathway/internal"
)

// Solve runs the sequential reference A* solver: a binary heap open set
// ordered by f, an arena-backed closed set, and best-g relaxation against
// the arena's global node table. It is single-threaded and has no
// suspension points.
func Solve(g *grid.Grid, start, target int) (Result, error) {
	a, err := newArena(g.N())
	if err != nil {
		return Result{}, err
	}
	ex, ey := g.ToXY(target)
	a.seed(start)

	open := make(openHeap, 0, 64)
	sx, sy := g.ToXY(start)
	heap.Push(&open, openEntry{id: start, f: grid.Octile(sx, sy, ex, ey), version: 1})

	var nbrBuf []grid.Neighbor
	expanded := 0

	for open.Len() > 0 {
		entry := heap.Pop(&open).(openEntry)
		if a.isClosed(entry.id) {
			continue
		}
		cur := a.get(entry.id)
		if entry.version != cur.version {
			// Stale: a cheaper g was installed after this entry was pushed.
			continue
		}
		if !a.close(entry.id) {
			continue
		}
		expanded++

		if entry.id == target {
			path := reconstructPoints(g, a, entry.id)
			return Result{
				Success:       true,
				OptimalCost:   cur.g,
				Path:          path,
				NodesExpanded: expanded,
				Rounds:        1,
			}, nil
		}

		nbrBuf = g.Neighbors(entry.id, nbrBuf[:0])
		for _, nb := range nbrBuf {
			tentativeG := cur.g + nb.Cost
			rec, installed := a.tryRelax(nb.ID, tentativeG, int32(entry.id))
			if !installed {
				continue
			}
			nx, ny := g.ToXY(nb.ID)
			heap.Push(&open, openEntry{id: nb.ID, f: rec.g + grid.Octile(nx, ny, ex, ey), version: rec.version})
		}
	}

	return Result{Success: false, NodesExpanded: expanded, Rounds: 1}, nil
}

func reconstructPoints(g *grid.Grid, a *arena, target int) []Point {
	ids := internal.ReconstructPath(target, g.N(), a.predecessorOf)
	path := make([]Point, len(ids))
	for i, id := range ids {
		x, y := g.ToXY(id)
		path[i] = Point{X: x, Y: y}
	}
	return path
}
