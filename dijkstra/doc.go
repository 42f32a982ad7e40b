// Package dijkstra finds the shortest path between two nodes of a core.Graph.
//
// Overview:
//
//   - ShortestPath resolves two external identifiers, runs Dijkstra from the
//     first and rebuilds the path to the second into a Path: the total
//     distance plus the identifiers from start to end, both inclusive, held
//     in a strlist.List.
//   - Run exposes the working arrays (distances, predecessors, explored flags)
//     for callers that want more than one path from the same source.
//   - Reconstruct walks the predecessor array backward from the destination,
//     inserting each identifier at the front of the list.
//
// Algorithm:
//
//   - Selection is a linear scan for the unexplored node with the smallest
//     finite tentative distance; ties go to the lowest index. No heap.
//   - The loop stops when the destination is selected (its distance is final
//     under non-negative weights) or when no finite unexplored node remains.
//     WithoutEarlyStop() disables the first condition.
//   - Arc targets are resolved through an identifier→index map copied once
//     per query.
//   - An arc whose target is not a node of the graph is skipped. The query
//     goes on; the skip is counted in Result.Skipped, logged at debug level
//     and reported to the Recorder.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
//
// Outcomes:
//
//   - Path found:         (*Path, nil)
//   - Unreachable target: (nil, nil). Never an empty Path.
//   - Invalid query:      (nil, err) with err wrapping ErrNilGraph or
//     ErrUnknownEndpoint.
//
// A query for start == end returns the singleton path [start] at distance 0
// without running the relax loop.
//
// Numeric semantics:
//
//	Distances are float64; unreached nodes hold +Inf. Integer arc weights are
//	widened to float64 before accumulation.
//
// Thread safety:
//
//	Each query allocates its own arrays and only reads the graph, so any
//	number of queries may run concurrently against a graph nobody mutates.
package dijkstra
