package bfs

import "container/heap"

// candidate is a frontier entry: the best known (parent, distance) for id.
// seq is the order in which id first entered the frontier and breaks ties
// between equal distances, so extraction is deterministic for a fixed
// adjacency order.
type candidate struct {
	id       string
	parent   string
	distance int
	seq      int
	index    int // position in the heap, maintained by Swap
}

// frontier is an indexed min-heap of candidates keyed by node ID.
// Each key holds at most one entry: offers that do not strictly improve the
// best tentative distance are discarded, improvements overwrite in place.
type frontier struct {
	items candidateHeap
	byID  map[string]*candidate
	next  int
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		items: make(candidateHeap, 0, capacity),
		byID:  make(map[string]*candidate, capacity),
	}
}

// offer proposes (parent, distance) for id and reports whether it was accepted.
func (f *frontier) offer(id, parent string, distance int) bool {
	if c, ok := f.byID[id]; ok {
		if distance >= c.distance {
			return false
		}
		c.parent, c.distance = parent, distance
		heap.Fix(&f.items, c.index)

		return true
	}
	c := &candidate{id: id, parent: parent, distance: distance, seq: f.next}
	f.next++
	f.byID[id] = c
	heap.Push(&f.items, c)

	return true
}

// popMin removes and returns the candidate with the smallest distance.
func (f *frontier) popMin() *candidate {
	c := heap.Pop(&f.items).(*candidate)
	delete(f.byID, c.id)

	return c
}

func (f *frontier) empty() bool { return len(f.items) == 0 }

// candidateHeap implements heap.Interface ordered by (distance, seq).
type candidateHeap []*candidate

// Len returns the number of items in the heap.
func (h candidateHeap) Len() int { return len(h) }

// Less orders by distance, then by first-offer sequence.
func (h candidateHeap) Less(i, j int) bool {
	if h[i].distance != h[j].distance {
		return h[i].distance < h[j].distance
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements and keeps their indices current.
func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends x; used by heap.Push.
func (h *candidateHeap) Push(x any) {
	c := x.(*candidate)
	c.index = len(*h)
	*h = append(*h, c)
}

// Pop removes the last element; used by heap.Pop.
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.index = -1
	*h = old[:n-1]

	return c
}
