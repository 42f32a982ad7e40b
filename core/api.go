// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for configuration and catalog sizes.
// Policy:
//   - No algorithms here.
//   - Every getter takes the read lock.

package core

// Oriented reports whether arcs are one-way.
// Complexity: O(1).
func (g *Graph) Oriented() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.oriented
}

// DanglingArcs reports whether arcs to unknown targets are accepted.
func (g *Graph) DanglingArcs() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowDangling
}

// Source returns the name of the resource the graph was built from.
func (g *Graph) Source() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.source
}

// Size returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// ArcCount returns the number of stored arcs, mirrors included.
// Complexity: O(V).
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, n := range g.nodes {
		total += len(n.Arcs)
	}

	return total
}

// Stats returns a snapshot of configuration flags and catalog sizes.
// DanglingArcCount counts arcs whose target is not a node of the graph.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Oriented:        g.oriented,
		DanglingAllowed: g.allowDangling,
		Source:          g.source,
		NodeCount:       len(g.nodes),
	}
	for _, n := range g.nodes {
		stats.ArcCount += len(n.Arcs)
		for _, a := range n.Arcs {
			if _, ok := g.index[a.To]; !ok {
				stats.DanglingArcCount++
			}
		}
	}

	return stats
}
