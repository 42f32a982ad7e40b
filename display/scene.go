// SPDX-License-Identifier: MIT
//
// File: scene.go
// Role: Scene model and its translation to a Graphviz document.

package display

import (
	"io"
	"strings"
	"unicode"

	"github.com/emicklei/dot"
)

// Scene is a DOT graph ready to be written.
type Scene struct {
	Name     string
	Directed bool
	Attrs    map[string]string
	Nodes    []*SceneNode
	Edges    []*SceneEdge

	// Omitted counts arcs that could not be drawn.
	Omitted int
}

// SceneNode is one DOT node statement.
type SceneNode struct {
	ID    string
	Attrs map[string]string
}

// SceneEdge is one DOT edge statement.
type SceneEdge struct {
	From  string
	To    string
	Attrs map[string]string
}

// FindNode returns the node with the given ID, or nil.
func (s *Scene) FindNode(id string) *SceneNode {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n
		}
	}

	return nil
}

// EdgesBetween returns the edges joining a and b. In an undirected scene
// either orientation matches.
func (s *Scene) EdgesBetween(a, b string) []*SceneEdge {
	var out []*SceneEdge
	for _, e := range s.Edges {
		if (e.From == a && e.To == b) || (!s.Directed && e.From == b && e.To == a) {
			out = append(out, e)
		}
	}

	return out
}

// Graph translates the scene into a Graphviz document. Statements keep
// scene order; parallel edges stay separate.
func (s *Scene) Graph() *dot.Graph {
	kind := dot.Undirected
	if s.Directed {
		kind = dot.Directed
	}
	g := dot.NewGraph(kind)
	if id := dotID(s.Name); id != "" {
		g.ID(id)
	}
	for k, v := range s.Attrs {
		g.Attr(k, v)
	}

	nodes := make(map[string]dot.Node, len(s.Nodes))
	for _, n := range s.Nodes {
		dn := g.Node(n.ID)
		for k, v := range n.Attrs {
			dn.Attr(k, v)
		}
		nodes[n.ID] = dn
	}
	for _, e := range s.Edges {
		de := g.Edge(nodes[e.From], nodes[e.To])
		for k, v := range e.Attrs {
			de.Attr(k, v)
		}
	}

	return g
}

// WriteTo writes the scene in DOT syntax.
func (s *Scene) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())

	return int64(n), err
}

// String returns the DOT text.
func (s *Scene) String() string {
	return s.Graph().String()
}

// dotID turns name into a bare DOT identifier: letters, digits and
// underscores, not starting with a digit.
func dotID(name string) string {
	id := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
	if id != "" && unicode.IsDigit(rune(id[0])) {
		id = "_" + id
	}

	return id
}
