// SPDX-License-Identifier: MIT
// Package: pathview/builder
//
// impl_random_sparse.go - Erdős–Rényi-like random graph G(n, p).
//
// Contract:
//   - n ≥ 1, else ErrTooFewVertices.
//   - p ∈ [0, 1], else ErrInvalidProbability.
//   - A random source is required, else ErrNeedRandSource.
//   - Nodes idFn(0..n-1) evenly spaced on a circle of radius spacing.
//   - Oriented graphs try every ordered pair (i, j), i ≠ j; non-oriented
//     graphs try i < j once and let core mirror the arc.
//
// Determinism: trials run in ascending (i, j) order, so a fixed seed
// fixes the result.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathview/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples arcs over n nodes with
// independent probability p. Weights come from the configured WeightFn.
// Complexity: O(n) nodes + O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate in priority order.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%g (must be in [%g,%g]): %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes on a circle.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			angle := 2 * math.Pi * float64(i) / float64(n)
			x, y := cfg.spacing*math.Cos(angle), cfg.spacing*math.Sin(angle)
			if _, err := g.AddNode(id, i, x, y); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodRandomSparse, id, err)
			}
		}

		// 3) Bernoulli trials.
		oriented := g.Oriented()
		for i := 0; i < n; i++ {
			jStart := 0
			if !oriented {
				jStart = i + 1
			}
			for j := jStart; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				from, to, w := cfg.idFn(i), cfg.idFn(j), cfg.weight()
				if err := g.AddArc(from, to, w); err != nil {
					return fmt.Errorf("%s: AddArc(%s→%s, w=%d): %w", methodRandomSparse, from, to, w, err)
				}
			}
		}

		return nil
	}
}
