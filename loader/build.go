// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Load and Build: Document validation and graph assembly.

package loader

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/pathview/core"
)

// Load reads path and builds a graph from it. The graph's Source is path.
func Load(path string, opts ...Option) (*core.Graph, error) {
	cfg := resolve(opts)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	doc, err := Decode(src, path, cfg.Format)
	if err != nil {
		return nil, err
	}
	g, err := build(doc, path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	st := g.Stats()
	cfg.Logger.Debug("graph loaded",
		slog.String("source", path),
		slog.Bool("oriented", st.Oriented),
		slog.Int("nodes", st.NodeCount),
		slog.Int("arcs", st.ArcCount),
		slog.Int("dangling_arcs", st.DanglingArcCount))

	return g, nil
}

// Build turns a decoded description into a graph.
//
// Steps:
//  1. Validate: at least one node; adjacents and weights paired.
//  2. Add every node in file order (index = position in the file).
//  3. Add every arc; non-oriented graphs mirror them in core.
func Build(doc *Document, opts ...Option) (*core.Graph, error) {
	return build(doc, "", resolve(opts))
}

func build(doc *Document, source string, cfg Options) (*core.Graph, error) {
	// 1) Validate shape before touching the graph.
	if doc == nil || len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidDescription)
	}
	for _, n := range doc.Nodes {
		if len(n.Adjacents) != len(n.Weights) {
			return nil, fmt.Errorf("%w: node %q has %d adjacents but %d weights",
				ErrInvalidDescription, n.ID, len(n.Adjacents), len(n.Weights))
		}
	}

	oriented := true
	if doc.Oriented != nil {
		oriented = *doc.Oriented
	}
	gopts := []core.GraphOption{core.WithOriented(oriented), core.WithSource(source)}
	if cfg.Lenient {
		gopts = append(gopts, core.WithDanglingArcs())
	}
	g := core.NewGraph(gopts...)

	// 2) Nodes first so arcs may point forward in the file.
	for _, n := range doc.Nodes {
		if _, err := g.AddNode(n.ID, n.Data, n.X, n.Y); err != nil {
			return nil, err
		}
	}

	// 3) Arcs.
	for _, n := range doc.Nodes {
		for i, to := range n.Adjacents {
			if err := g.AddArc(n.ID, to, n.Weights[i]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
