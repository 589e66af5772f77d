package grid

import (
	"errors"
	"testing"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewGrid(0, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := NewGrid(5, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestNewGridRejectsOversizedCapacity(t *testing.T) {
	if _, err := NewGrid(1<<14, 1<<14); !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
}

func TestToIDToXYIsABijection(t *testing.T) {
	g, err := NewGrid(7, 5)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := g.ToID(x, y)
			gotX, gotY := g.ToXY(id)
			if gotX != x || gotY != y {
				t.Fatalf("ToXY(ToID(%d,%d)) = (%d,%d)", x, y, gotX, gotY)
			}
		}
	}
}

func TestNeighborsRespectsMaskAndRange(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	// Corner cell (0,0): only East, South, SouthEast are in range.
	id := g.ToID(0, 0)
	g.SetMask(id, 1<<uint(East)|1<<uint(South)|1<<uint(SouthEast)|1<<uint(West) /* out of range, must be dropped */)
	nbrs := g.Neighbors(id, nil)
	if len(nbrs) != 3 {
		t.Fatalf("expected 3 in-range neighbours, got %d: %+v", len(nbrs), nbrs)
	}
	seen := map[int]float64{}
	for _, n := range nbrs {
		seen[n.ID] = n.Cost
	}
	if cost, ok := seen[g.ToID(1, 0)]; !ok || cost != 1 {
		t.Errorf("missing or wrong-cost East neighbour: %v %v", ok, cost)
	}
	if cost, ok := seen[g.ToID(1, 1)]; !ok || cost != Sqrt2 {
		t.Errorf("missing or wrong-cost SouthEast neighbour: %v %v", ok, cost)
	}
}

func TestOctileMatchesKnownDistances(t *testing.T) {
	cases := []struct {
		x, y, ex, ey int
		want         float64
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 4, 0, 4},
		{0, 0, 0, 4, 4},
		{0, 0, 3, 3, 3 * Sqrt2},
		{0, 0, 5, 2, 2*Sqrt2 + 3},
	}
	for _, c := range cases {
		got := Octile(c.x, c.y, c.ex, c.ey)
		if diff := got - c.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Octile(%d,%d,%d,%d) = %v, want %v", c.x, c.y, c.ex, c.ey, got, c.want)
		}
	}
}
