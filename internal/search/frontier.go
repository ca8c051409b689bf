package search

import "container/heap"

// Frontier is the open set: a min-heap of nodes ordered by F ascending.
//
// It uses the lazy-decrease-key approach: a cheaper route to a position is a
// new entry, and several entries for one position may coexist. Callers resolve
// duplicates when they pop. Ties on F are broken by heap order only.
type Frontier struct {
	pq nodePQ
}

// NewFrontier returns an empty frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	f := &Frontier{pq: make(nodePQ, 0, capacity)}
	heap.Init(&f.pq)
	return f
}

// Push adds n.
func (f *Frontier) Push(n Node) { heap.Push(&f.pq, n) }

// Pop removes and returns the lowest-F node. The frontier must not be empty.
func (f *Frontier) Pop() Node { return heap.Pop(&f.pq).(Node) }

// Len returns the number of entries, duplicates included.
func (f *Frontier) Len() int { return f.pq.Len() }

// Drain empties the frontier and returns its entries in no particular order.
func (f *Frontier) Drain() []Node {
	out := f.pq
	f.pq = nil
	return out
}

// nodePQ is a min-heap (priority queue) of Node, ordered by Node.F ascending.
type nodePQ []Node

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller F → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].F < pq[j].F }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type Node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(Node)) }

// Pop removes and returns the last element after heap.Pop moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
