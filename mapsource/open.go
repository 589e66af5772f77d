package mapsource

import "fmt"

// OpenSource generates a grid where every in-range axial step is always
// open, and diagonal steps are open only if Diagonals is true. It is the
// basis for fully-connected and axial-only deterministic scenarios.
type OpenSource struct {
	W, H             int
	Diagonals        bool
	StartX, StartY   int
	TargetX, TargetY int
}

// NewOpenSource builds an OpenSource spanning the whole w x h grid, from
// the top-left corner to the bottom-right corner.
func NewOpenSource(w, h int, diagonals bool) *OpenSource {
	return &OpenSource{
		W: w, H: h, Diagonals: diagonals,
		StartX: 0, StartY: 0,
		TargetX: w - 1, TargetY: h - 1,
	}
}

func (o *OpenSource) Width() int  { return o.W }
func (o *OpenSource) Height() int { return o.H }

func (o *OpenSource) Start() (int, int)  { return o.StartX, o.StartY }
func (o *OpenSource) Target() (int, int) { return o.TargetX, o.TargetY }

func (o *OpenSource) Generate(buf []byte) error {
	if len(buf) != o.W*o.H {
		return fmt.Errorf("mapsource: buffer length %d does not match %dx%d grid", len(buf), o.W, o.H)
	}
	var mask byte = 0x0F // East, West, North, South
	if o.Diagonals {
		mask = 0xFF
	}
	for i := range buf {
		buf[i] = mask
	}
	return nil
}
