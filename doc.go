// Package pathview finds and shows shortest paths in small weighted graphs
// described in JSON, YAML or HCL files.
//
// What is inside?
//
//	strlist/  - a sentinel doubly linked list of strings with an iterator
//	core/     - the Graph: identifier → index lookup, coordinates, arcs
//	dijkstra/ - O(V²) Dijkstra with early stop and path reconstruction
//	loader/   - description files → Graph, plus a file watcher
//	builder/  - deterministic fixtures: paths, grids, random sparse graphs
//	display/  - Graph (+ Path) → Graphviz DOT
//	metrics/  - Prometheus counters for queries, relaxations, skipped arcs
//	logging/  - slog logger construction
//	config/   - YAML configuration for the command
//	cmd/pathview - the command-line front end
//
// Quick example:
//
//	A ──2── B
//	 \      │
//	  10    3
//	   \    │
//	    ─── C
//
//	g, _ := loader.Load("triangle.json")
//	p, _ := dijkstra.ShortestPath(g, "A", "C")
//	dijkstra.Print(os.Stdout, p) // path (distance = 5): [A, B, C]
package pathview
