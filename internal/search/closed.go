package search

import "github.com/katalvlaran/gridpath/grid"

// Closed is the closed set keyed by position, holding one node per cell.
type Closed struct {
	nodes map[grid.Coordinate]Node
}

// NewClosed returns an empty closed set.
func NewClosed(capacity int) *Closed {
	return &Closed{nodes: make(map[grid.Coordinate]Node, capacity)}
}

// Get returns the node stored for pos.
func (c *Closed) Get(pos grid.Coordinate) (Node, bool) {
	n, ok := c.nodes[pos]
	return n, ok
}

// Has reports whether pos has an entry.
func (c *Closed) Has(pos grid.Coordinate) bool {
	_, ok := c.nodes[pos]
	return ok
}

// Len returns the number of distinct positions.
func (c *Closed) Len() int { return len(c.nodes) }

// Replace stores n unless the entry already held for its position is cheaper.
// The latest entry wins among equal or better costs.
func (c *Closed) Replace(n Node) {
	if old, ok := c.nodes[n.Position]; ok && old.G < n.G {
		return
	}
	c.nodes[n.Position] = n
}

// Keep stores n if its position is new, or if n is strictly cheaper than the
// stored entry. The first entry wins among equal costs.
func (c *Closed) Keep(n Node) {
	if old, ok := c.nodes[n.Position]; ok && old.G <= n.G {
		return
	}
	c.nodes[n.Position] = n
}
