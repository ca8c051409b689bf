// Package search holds the state shared by the gridpath engines: the search
// node, the frontier (open set), the closed set and the path reconstructor.
//
// Everything here is created per search call and discarded when the call
// returns; nothing is safe for concurrent use and nothing needs to be.
package search

import "github.com/katalvlaran/gridpath/grid"

// Node is one frontier / closed-set record.
//
// F == G + H at construction and nodes are never mutated: an updated cost is a
// new Node. Frontier ordering uses F only; set identity uses Position only.
// Parent == Position marks the start node (no predecessor).
type Node struct {
	F, G, H  float64
	Position grid.Coordinate
	Parent   grid.Coordinate
}

// NewNode builds a node with F = g + h.
func NewNode(g, h float64, pos, parent grid.Coordinate) Node {
	return Node{F: g + h, G: g, H: h, Position: pos, Parent: parent}
}

// Start builds the self-parented start node.
func Start(pos, goal grid.Coordinate) Node {
	return NewNode(0, grid.Distance(pos, goal), pos, pos)
}

// FromParent builds the node reached by travelling in a straight line from
// parent to pos.
func FromParent(parent Node, pos, goal grid.Coordinate) Node {
	g := parent.G + grid.Distance(parent.Position, pos)
	return NewNode(g, grid.Distance(pos, goal), pos, parent.Position)
}

// IsStart reports whether n is the start sentinel.
func (n Node) IsStart() bool { return n.Parent == n.Position }
