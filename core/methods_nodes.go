// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node insertion and identifier/index resolution.
//
// Determinism:
//   - Indices follow insertion order and never change once assigned.
//
// Concurrency:
//   - AddNode under the write lock; lookups under the read lock.

package core

import "fmt"

// AddNode appends a node and returns its index.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrDuplicateNode: if id is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, data int, x, y float64) (int, error) {
	if id == "" {
		return NotFound, ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[id]; exists {
		return NotFound, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, &Node{ID: id, Data: data, X: x, Y: y})
	g.index[id] = idx

	return idx, nil
}

// HasNode reports whether id names a node of the graph.
func (g *Graph) HasNode(id string) bool {
	return g.NodeIndex(id) != NotFound
}

// NodeIndex returns the 0-based position of the node named id, or NotFound.
// Resolution goes through the identifier map maintained by AddNode, so the
// result equals a front-to-back scan at O(1) cost.
func (g *Graph) NodeIndex(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx, ok := g.index[id]; ok {
		return idx
	}

	return NotFound
}

// NodeID returns the identifier at index, or ("", false) if index is out of range.
func (g *Graph) NodeID(index int) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if index < 0 || index >= len(g.nodes) {
		return "", false
	}

	return g.nodes[index].ID, true
}

// IndexMap returns a copy of the identifier→index map.
// Callers resolving many identifiers in a loop should take one copy up front.
// Complexity: O(V).
func (g *Graph) IndexMap() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int, len(g.index))
	for id, idx := range g.index {
		out[id] = idx
	}

	return out
}

// Node returns a snapshot of the node at index, arcs included.
func (g *Graph) Node(index int) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if index < 0 || index >= len(g.nodes) {
		return Node{}, false
	}

	return g.nodes[index].snapshot(), true
}

// Nodes returns snapshots of every node in index order.
// Complexity: O(V + E).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.snapshot()
	}

	return out
}

func (n *Node) snapshot() Node {
	cp := *n
	cp.Arcs = append([]Arc(nil), n.Arcs...)

	return cp
}
