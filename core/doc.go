// Package core provides the in-memory weighted Graph that path queries run
// over.
//
// A Graph stores Nodes in insertion order. The position of a node in that
// order is its index: index-based operations (NodeID, ArcList, Node) and the
// working arrays of the dijkstra package are all addressed by it. Each node
// carries an external string identifier, an integer payload, 2D coordinates
// used only by display code, and an adjacency list of Arcs.
//
// Configuration Options (GraphOption):
//
//	– WithOriented(oriented bool)
//	    Default true. When false, AddArc mirrors every arc (to → from) so the
//	    adjacency lists describe an undirected graph. An undirected description
//	    may list an edge from one or both endpoints; the mirror is added once.
//
//	– WithSource(name string)
//	    Records the originating resource name (diagnostics only).
//
//	– WithDanglingArcs()
//	    Accepts arcs whose target identifier is not a node of the graph.
//	    Path queries skip such arcs and count them. Off by default.
//
// Core Methods:
//
//	// Construction
//	AddNode(id string, data int, x, y float64) (index int, err error) // O(1) amortized
//	AddArc(from, to string, weight int) error                         // O(1) amortized†
//
//	// Lookup
//	NodeIndex(id string) int         // O(1), NotFound (-1) if absent
//	NodeID(index int) (string, bool) // O(1), false if out of range
//	ArcList(index int) []Arc         // O(deg), nil if out of range
//	IndexMap() map[string]int        // O(V) copy of the identifier→index map
//	Size() int                       // O(1)
//
//	// Display surface (read-only snapshots)
//	Node(index int) (Node, bool)
//	Nodes() []Node
//	Stats() GraphStats
//
// † In a non-oriented graph the mirror check scans the target's arcs.
//
// Concurrency:
//
// One sync.RWMutex guards the node store. Construction takes the write
// lock; every query takes the read lock and returns copies, so any
// number of path queries may run against a graph once it is built.
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node identifier
//	ErrDuplicateNode  – identifier already present
//	ErrNodeNotFound   – arc endpoint missing from the graph
//	ErrNegativeWeight – arc weight below zero
package core
