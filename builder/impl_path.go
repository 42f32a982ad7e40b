// SPDX-License-Identifier: MIT
// Package: pathview/builder
//
// impl_path.go - the straight path P_n.
//
// Contract:
//   - n ≥ 2, else ErrTooFewVertices.
//   - Nodes idFn(0..n-1) at (i*spacing, 0).
//   - Arcs i→i+1 in ascending i; a non-oriented graph mirrors each one.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathview/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path over n nodes.
// Complexity: O(n) nodes + O(n) arcs.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// 2) Nodes left to right.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if _, err := g.AddNode(id, i, float64(i)*cfg.spacing, 0); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodPath, id, err)
			}
		}

		// 3) Consecutive arcs.
		for i := 0; i+1 < n; i++ {
			from, to, w := cfg.idFn(i), cfg.idFn(i+1), cfg.weight()
			if err := g.AddArc(from, to, w); err != nil {
				return fmt.Errorf("%s: AddArc(%s→%s, w=%d): %w", methodPath, from, to, w, err)
			}
		}

		return nil
	}
}
