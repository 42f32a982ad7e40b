// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: Render a graph and an optional path into a Scene.

package display

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/pathview/core"
	"github.com/katalvlaran/pathview/dijkstra"
)

// ErrNilGraph indicates that Render was given a nil graph.
var ErrNilGraph = errors.New("display: graph is nil")

const (
	defaultName      = "pathview"
	defaultScale     = 1.0
	defaultHighlight = "red"
	highlightPen     = "2.5"
)

// Options configures rendering.
type Options struct {
	Name      string
	Scale     float64
	Highlight string
}

// Option represents a functional option for configuring rendering.
type Option func(*Options)

// WithName sets the DOT graph name. The graph's Source is used otherwise.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithScale multiplies every coordinate by k. Panics if k <= 0.
func WithScale(k float64) Option {
	if k <= 0 {
		panic("display: WithScale(k<=0)")
	}
	return func(o *Options) {
		o.Scale = k
	}
}

// WithHighlight sets the Graphviz color used for the path. Panics on "".
func WithHighlight(color string) Option {
	if color == "" {
		panic(`display: WithHighlight("")`)
	}
	return func(o *Options) {
		o.Highlight = color
	}
}

// Render builds a Scene from g, highlighting p when it is non-nil.
// g is only read.
//
// Complexity: O(V + E + L·deg) where L is the path length.
func Render(g *core.Graph, p *dijkstra.Path, opts ...Option) (*Scene, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := Options{Name: g.Source(), Scale: defaultScale, Highlight: defaultHighlight}
	if cfg.Name == "" {
		cfg.Name = defaultName
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := g.Nodes()
	index := g.IndexMap()
	s := &Scene{
		Name:     cfg.Name,
		Directed: g.Oriented(),
		Attrs:    map[string]string{"splines": "true", "overlap": "false"},
	}

	// 1) One node statement per node, pinned at its coordinates.
	for _, n := range nodes {
		s.Nodes = append(s.Nodes, &SceneNode{
			ID: n.ID,
			Attrs: map[string]string{
				"label":  n.ID,
				"xlabel": strconv.Itoa(n.Data),
				"pos":    fmt.Sprintf("%g,%g!", n.X*cfg.Scale, n.Y*cfg.Scale),
			},
		})
	}

	// 2) Edges. Non-oriented graphs store each edge twice; draw it from the
	//    lower index only. Self-arcs are stored once either way.
	weights := make(map[*SceneEdge]int)
	for i, n := range nodes {
		for _, a := range n.Arcs {
			j, ok := index[a.To]
			if !ok {
				s.Omitted++
				continue
			}
			if !s.Directed && j < i {
				continue
			}
			e := &SceneEdge{From: n.ID, To: a.To, Attrs: map[string]string{"label": strconv.Itoa(a.Weight)}}
			s.Edges = append(s.Edges, e)
			weights[e] = a.Weight
		}
	}

	// 3) Path.
	if p != nil {
		highlightPath(s, p, weights, cfg.Highlight)
	}

	return s, nil
}

func highlightPath(s *Scene, p *dijkstra.Path, weights map[*SceneEdge]int, color string) {
	s.Attrs["label"] = p.String()

	ids := p.IDs()
	for _, id := range ids {
		if n := s.FindNode(id); n != nil {
			n.Attrs["color"] = color
			n.Attrs["penwidth"] = highlightPen
		}
	}
	for i := 0; i+1 < len(ids); i++ {
		var best *SceneEdge
		for _, e := range s.EdgesBetween(ids[i], ids[i+1]) {
			if best == nil || weights[e] < weights[best] {
				best = e
			}
		}
		if best != nil {
			best.Attrs["color"] = color
			best.Attrs["penwidth"] = highlightPen
		}
	}
}

// WriteFile renders g and p and writes the DOT document to path.
func WriteFile(path string, g *core.Graph, p *dijkstra.Path, opts ...Option) error {
	s, err := Render(g, p, opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("display: create %s: %w", path, err)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("display: write %s: %w", path, err)
	}

	return f.Close()
}
