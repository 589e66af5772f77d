package pathway

import (
	"container/heap"
	"math"
	"sync"
)

// frontier is the parallel solver's open set: a two-level structure.
// "active" is a plain min-heap by f, touched only by the single
// orchestrator goroutine that runs the round loop. "staging" is an
// unsorted buffer that concurrent relax/reinsert goroutines append to
// under a mutex; the orchestrator periodically sorts it into active by
// merging at the start of each round. This trades perfect parallel-insert
// throughput for a frontier whose extract-top-K and peek-min are trivial
// and race-free.
type frontier struct {
	active openHeap

	stagingMu sync.Mutex
	staging   []openEntry
}

func newFrontier() *frontier {
	return &frontier{active: make(openHeap, 0, 64)}
}

// push installs an entry directly into the active heap. Only the
// orchestrator may call this (seeding the start node, or putting the
// target back after a round that extracted but did not finalise it).
func (fr *frontier) push(e openEntry) {
	heap.Push(&fr.active, e)
}

// stage queues an entry for the next mergeStaging call. Safe to call
// concurrently from many goroutines.
func (fr *frontier) stage(e openEntry) {
	fr.stagingMu.Lock()
	fr.staging = append(fr.staging, e)
	fr.stagingMu.Unlock()
}

// mergeStaging folds all staged entries into the active heap. Must only be
// called by the orchestrator, between rounds.
func (fr *frontier) mergeStaging() {
	fr.stagingMu.Lock()
	pending := fr.staging
	fr.staging = nil
	fr.stagingMu.Unlock()
	for _, e := range pending {
		heap.Push(&fr.active, e)
	}
}

// extractTopK pops up to k valid (non-stale, non-closed) entries from
// active, in ascending-f order, discarding any stale entries it encounters
// along the way.
func (fr *frontier) extractTopK(k int, a *arena) []openEntry {
	batch := make([]openEntry, 0, k)
	for len(batch) < k && fr.active.Len() > 0 {
		e := heap.Pop(&fr.active).(openEntry)
		cur := a.get(e.id)
		if cur.closed || cur.version != e.version {
			continue
		}
		batch = append(batch, e)
	}
	return batch
}

// peekMinF returns the smallest f remaining in active, or +Inf if empty.
func (fr *frontier) peekMinF() float64 {
	if fr.active.Len() == 0 {
		return math.Inf(1)
	}
	return fr.active[0].f
}

// size reports the active heap's length, for metrics only.
func (fr *frontier) size() int { return fr.active.Len() }

// empty reports whether the active heap is empty; staged entries are not
// counted. Only meaningful right after mergeStaging (otherwise staged
// entries not yet folded in would make this report a false empty).
func (fr *frontier) empty() bool {
	return fr.active.Len() == 0
}
