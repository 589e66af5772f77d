package mapsource

import (
	"fmt"
	"math/rand"

	"github.com/arvi-lang/pathway/grid"
)

// RandomSource generates a grid whose undirected edges are each open
// independently with probability EdgeProbability, seeded deterministically.
// Reachability between Start and Target is not guaranteed — that is what
// lets unreachable-target scenarios be exercised.
type RandomSource struct {
	W, H             int
	Seed             int64
	EdgeProbability  float64
	StartX, StartY   int
	TargetX, TargetY int
}

// NewRandomSource builds a RandomSource with start at the top-left corner
// and target at the bottom-right corner of a w x h grid.
func NewRandomSource(w, h int, seed int64, edgeProbability float64) *RandomSource {
	return &RandomSource{
		W: w, H: h, Seed: seed, EdgeProbability: edgeProbability,
		StartX: 0, StartY: 0,
		TargetX: w - 1, TargetY: h - 1,
	}
}

func (r *RandomSource) Width() int  { return r.W }
func (r *RandomSource) Height() int { return r.H }

func (r *RandomSource) Start() (int, int)  { return r.StartX, r.StartY }
func (r *RandomSource) Target() (int, int) { return r.TargetX, r.TargetY }

// Generate fills buf with masks. Each undirected edge (the axial East/South
// pair and the diagonal SouthEast/SouthWest pair, walked once per cell) is
// decided independently and mirrored onto both endpoints, so the resulting
// mask is always reciprocal: if u can step to v, v can step back to u.
func (r *RandomSource) Generate(buf []byte) error {
	if len(buf) != r.W*r.H {
		return fmt.Errorf("mapsource: buffer length %d does not match %dx%d grid", len(buf), r.W, r.H)
	}
	for i := range buf {
		buf[i] = 0
	}
	rng := rand.New(rand.NewSource(r.Seed))
	toID := func(x, y int) int { return y*r.W + x }

	type edge struct {
		dir, reverse grid.Dir
	}
	forward := []edge{
		{grid.East, grid.West},
		{grid.South, grid.North},
		{grid.SouthEast, grid.NorthWest},
		{grid.SouthWest, grid.NorthEast},
	}

	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			id := toID(x, y)
			for _, e := range forward {
				d := grid.Directions[e.dir]
				nx, ny := x+d.DX, y+d.DY
				if nx < 0 || nx >= r.W || ny < 0 || ny >= r.H {
					continue
				}
				if rng.Float64() >= r.EdgeProbability {
					continue
				}
				nid := toID(nx, ny)
				buf[id] |= 1 << uint(e.dir)
				buf[nid] |= 1 << uint(e.reverse)
			}
		}
	}
	return nil
}
