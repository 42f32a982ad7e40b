// SPDX-License-Identifier: MIT
//
// File: methods_arcs.go
// Role: Arc insertion and adjacency queries.
//
// Determinism:
//   - ArcList preserves insertion order; the mirror of an arc is appended to
//     the target's list at the moment the arc is added.

package core

import "fmt"

// AddArc appends from → to with the given weight to from's adjacency list.
//
// Steps:
//  1. Validate weight (ErrNegativeWeight) and resolve from (ErrNodeNotFound).
//  2. Resolve to; unknown targets fail unless WithDanglingArcs() was given.
//  3. Oriented graph: append and stop.
//  4. Non-oriented graph: skip if the mirror already exists with the same
//     weight (the edge was listed from the other endpoint), else append both
//     directions. Dangling arcs are never mirrored.
//
// Complexity: O(1) amortized oriented, O(deg(to)) non-oriented.
func (g *Graph) AddArc(from, to string, weight int) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: arc source %q", ErrNodeNotFound, from)
	}
	ti, ok := g.index[to]
	if !ok && !g.allowDangling {
		return fmt.Errorf("%w: arc target %q", ErrNodeNotFound, to)
	}

	src := g.nodes[fi]
	if g.oriented || !ok {
		src.Arcs = append(src.Arcs, Arc{To: to, Weight: weight})
		return nil
	}

	dst := g.nodes[ti]
	if hasArc(src.Arcs, to, weight) && hasArc(dst.Arcs, from, weight) {
		return nil
	}
	src.Arcs = append(src.Arcs, Arc{To: to, Weight: weight})
	if fi != ti {
		dst.Arcs = append(dst.Arcs, Arc{To: from, Weight: weight})
	}

	return nil
}

// ArcList returns a copy of the adjacency list of the node at index,
// or nil when index is out of range.
func (g *Graph) ArcList(index int) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if index < 0 || index >= len(g.nodes) {
		return nil
	}

	return append([]Arc(nil), g.nodes[index].Arcs...)
}

func hasArc(arcs []Arc, to string, weight int) bool {
	for _, a := range arcs {
		if a.To == to && a.Weight == weight {
			return true
		}
	}

	return false
}
