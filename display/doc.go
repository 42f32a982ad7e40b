// Package display renders a core.Graph, and optionally a shortest path on
// it, as a Graphviz DOT document.
//
// Rendering happens in two stages. Render builds a Scene, a small DOT
// model of nodes, edges and attribute maps, and never mutates the graph.
// Scene.Graph translates the model into a github.com/emicklei/dot graph,
// which Scene.String and Scene.WriteTo serialize.
//
// Layout: node coordinates become pinned positions (pos="x,y!"), scaled by
// WithScale, so `neato -n` or `fdp` reproduce the file's geometry.
//
// Oriented graphs become a digraph. Non-oriented graphs become a graph
// whose edges are drawn once, from the lower node index. Arcs whose target
// is not a node are not drawn; Scene.Omitted counts them.
//
// Path highlighting marks every node of the path and, for each pair of
// consecutive nodes, the cheapest arc joining them.
package display
