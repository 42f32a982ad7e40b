// Package loader turns a graph description file into a *core.Graph.
//
// Three encodings of the same description are accepted:
//
//	JSON  {"oriented": true, "nodes": [{"id": "A", "data": 1, "x": 0, "y": 0,
//	       "adjacents": ["B"], "weights": [2]}]}
//	YAML  the same keys
//	HCL   oriented = true
//	      node "A" {
//	        data = 1
//	        x = 0
//	        y = 0
//	        adjacents = ["B"]
//	        weights = [2]
//	      }
//
// adjacents and weights are paired by position and must have the same
// length. "oriented" defaults to true when omitted.
//
// All nodes are added before any arc, so an arc may name a node declared
// later in the file. An arc whose target is not declared fails the load,
// unless WithLenient() is given: the graph is then built with
// core.WithDanglingArcs() and the path finder skips such arcs at query time.
//
// Watcher keeps a loaded graph fresh: it re-reads the file on every write
// and hands the new graph to registered callbacks. A reload that fails is
// logged and the previous graph stays current.
//
// Save and Encode go the other way, writing a graph back in any of the
// three encodings. A non-oriented edge is written once, so loading the
// saved file gives back the same graph.
package loader
