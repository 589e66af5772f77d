package pathway

// openEntry is a single open-set entry: the cell id, its priority f = g+h,
// and the arena version it was pushed for. A popped entry whose version no
// longer matches the arena's current version for that cell is stale and is
// discarded rather than processed, standing in for a decrease-key heap.
type openEntry struct {
	id      int
	f       float64
	version uint32
}

// openHeap is a container/heap.Interface over openEntry, ordered by f
// ascending. Ties are broken arbitrarily; consistency guarantees the first
// extraction of the target is optimal regardless.
type openHeap []openEntry

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(openEntry)) }
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
