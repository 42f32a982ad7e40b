// SPDX-License-Identifier: MIT
// Package: pathview/builder
//
// impl_grid.go - the rows×cols orthogonal grid.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1, else ErrTooFewVertices.
//   - Node IDs are "r,c" (row-major); idFn is not consulted.
//   - Coordinates are x = c*spacing, y = r*spacing; Data is the row-major index.
//   - Arcs go to the right and bottom neighbours. An oriented graph also
//     gets the reverse arc with the same weight so every cell is reachable
//     from every other.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathview/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the identifier Grid gives to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
// Complexity: O(rows*cols) nodes + O(rows*cols) arcs.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Nodes in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if _, err := g.AddNode(id, r*cols+c, float64(c)*cfg.spacing, float64(r)*cfg.spacing); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, id, err)
				}
			}
		}

		// 3) Right and bottom neighbours.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := gridArc(g, cfg, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := gridArc(g, cfg, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// gridArc adds u→v with one drawn weight, plus v→u in oriented graphs.
func gridArc(g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weight()
	if err := g.AddArc(u, v, w); err != nil {
		return fmt.Errorf("%s: AddArc(%s→%s, w=%d): %w", methodGrid, u, v, w, err)
	}
	if g.Oriented() {
		if err := g.AddArc(v, u, w); err != nil {
			return fmt.Errorf("%s: AddArc(%s→%s, w=%d): %w", methodGrid, v, u, w, err)
		}
	}

	return nil
}
