// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Arc, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// NotFound is the index reported for an identifier absent from the graph.
const NotFound = -1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node identifier is already taken.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an arc weight below zero.
	ErrNegativeWeight = errors.New("core: negative arc weight")
)

// Arc is one adjacency entry: a non-owning reference to the target node,
// by identifier, and the integer weight of the connection.
type Arc struct {
	// To is the identifier of the target node.
	To string

	// Weight is the cost of traversing the arc. Never negative.
	Weight int
}

// Node is a vertex of the Graph.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Data is a caller-assigned payload; the graph never interprets it.
	Data int

	// X and Y are layout hints for display. Path queries ignore them.
	X float64
	Y float64

	// Arcs is the outgoing adjacency list, in insertion order.
	Arcs []Arc
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Oriented         bool
	DanglingAllowed  bool
	Source           string
	NodeCount        int
	ArcCount         int
	DanglingArcCount int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithOriented sets whether arcs are one-way (true, the default) or mirrored.
func WithOriented(oriented bool) GraphOption {
	return func(g *Graph) { g.oriented = oriented }
}

// WithSource records the name of the resource the graph was built from.
func WithSource(name string) GraphOption {
	return func(g *Graph) { g.source = name }
}

// WithDanglingArcs lets AddArc accept targets that are not nodes of the graph.
func WithDanglingArcs() GraphOption {
	return func(g *Graph) { g.allowDangling = true }
}

// Graph is the in-memory weighted graph.
//
// nodes keeps insertion order (the index space); index maps identifiers back
// to positions. Both are guarded by mu.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	oriented      bool
	allowDangling bool
	source        string

	// Storage
	nodes []*Node
	index map[string]int
}

// NewGraph creates an empty, oriented Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		oriented: true,
		index:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
