package pathway

import (
	"fmt"
	"sync"
)

// nodeRecord is the per-cell entry in the arena: best known g, the
// predecessor cell id (-1 if none), a version bumped on every improvement,
// and whether the cell has been finalised (closed).
type nodeRecord struct {
	g        float64
	pred     int32
	version  uint32
	seen     bool
	closed   bool
}

// arena is the global node table: at most one record per cell, created on
// first discovery and never freed mid-query. Both solvers share the same
// arena type. Updates are arbitrated by one mutex per cell — the
// Go-goroutine stand-in for the lock-free atomic CAS a GPU back-end would
// use on a packed (g, pred, version) word; see DESIGN.md.
type arena struct {
	mu    []sync.Mutex
	nodes []nodeRecord
}

func newArena(n int) (*arena, error) {
	if n <= 0 {
		return nil, fmt.Errorf("pathway: non-positive arena size %d: %w", n, ErrCapacity)
	}
	return &arena{
		mu:    make([]sync.Mutex, n),
		nodes: make([]nodeRecord, n),
	}, nil
}

// seed installs the start node with g=0 and no predecessor.
func (a *arena) seed(start int) {
	a.mu[start].Lock()
	a.nodes[start] = nodeRecord{g: 0, pred: -1, version: 1, seen: true}
	a.mu[start].Unlock()
}

// get returns a snapshot of id's record.
func (a *arena) get(id int) nodeRecord {
	a.mu[id].Lock()
	r := a.nodes[id]
	a.mu[id].Unlock()
	return r
}

// tryRelax installs g/pred for id if id is not closed and either unseen or
// g is strictly smaller than the current best. Returns the resulting record and
// whether this call won the relaxation (i.e. should push a fresh open-set
// entry). Ties keep the existing predecessor — the arbitration rule is
// smallest g wins, and among equal g the first writer keeps its claim.
func (a *arena) tryRelax(id int, g float64, pred int32) (nodeRecord, bool) {
	a.mu[id].Lock()
	defer a.mu[id].Unlock()
	r := &a.nodes[id]
	if r.closed {
		return *r, false
	}
	if !r.seen || g < r.g {
		r.g = g
		r.pred = pred
		r.seen = true
		r.version++
		return *r, true
	}
	return *r, false
}

// close marks id finalised. Returns true if this call is the one that
// closed it (idempotent: later calls return false).
func (a *arena) close(id int) bool {
	a.mu[id].Lock()
	defer a.mu[id].Unlock()
	if a.nodes[id].closed {
		return false
	}
	a.nodes[id].closed = true
	return true
}

func (a *arena) isClosed(id int) bool {
	a.mu[id].Lock()
	c := a.nodes[id].closed
	a.mu[id].Unlock()
	return c
}

// predecessorOf satisfies internal.ReconstructPath's pred callback.
func (a *arena) predecessorOf(id int) (int, bool) {
	r := a.get(id)
	if r.pred < 0 {
		return 0, false
	}
	return int(r.pred), true
}
