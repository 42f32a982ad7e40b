// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: ShortestPath, path reconstruction and printing.

package dijkstra

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathview/core"
	"github.com/katalvlaran/pathview/metrics"
	"github.com/katalvlaran/pathview/strlist"
)

// ShortestPath returns the shortest path from startID to endID.
//
// Returns:
//
//   - (*Path, nil) when endID is reachable.
//   - (nil, nil) when it is not.
//   - (nil, err) for an invalid query: ErrNilGraph, or ErrUnknownEndpoint
//     wrapped with the offending identifier.
//
// Complexity: O(V² + E) time, O(V) space.
func ShortestPath(g *core.Graph, startID, endID string, opts ...Option) (*Path, error) {
	// 1) Build Options; every query gets a correlation ID.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.QueryID == "" {
		cfg.QueryID = uuid.NewString()
	}
	logger := cfg.Logger.With(slog.String("query", cfg.QueryID))
	began := time.Now()

	// 2) Resolve endpoints.
	if g == nil {
		cfg.Recorder.ObserveQuery(metrics.OutcomeInvalid, time.Since(began))
		return nil, ErrNilGraph
	}
	start, end := g.NodeIndex(startID), g.NodeIndex(endID)
	if start == core.NotFound || end == core.NotFound {
		cfg.Recorder.ObserveQuery(metrics.OutcomeInvalid, time.Since(began))
		missing := startID
		if start != core.NotFound {
			missing = endID
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, missing)
	}
	logger.Debug("query resolved", slog.String("start", startID), slog.Int("start_index", start),
		slog.String("end", endID), slog.Int("end_index", end))

	// 3) A path to oneself never enters the relax loop.
	if start == end {
		cfg.Recorder.ObserveQuery(metrics.OutcomeFound, time.Since(began))
		return newPath(startID), nil
	}

	// 4) Run and rebuild.
	runOpts := make([]Option, 0, len(opts)+1)
	runOpts = append(runOpts, opts...)
	runOpts = append(runOpts, WithQueryID(cfg.QueryID))
	res, err := Run(g, start, end, runOpts...)
	if err != nil {
		cfg.Recorder.ObserveQuery(metrics.OutcomeInvalid, time.Since(began))
		return nil, err
	}
	path := Reconstruct(g, res, end)
	if path == nil {
		logger.Debug("no path", slog.String("end", endID))
		cfg.Recorder.ObserveQuery(metrics.OutcomeUnreachable, time.Since(began))
		return nil, nil
	}
	logger.Debug("path found", slog.Float64("distance", path.Distance), slog.Int("hops", path.Len()-1),
		slog.Int("skipped_arcs", res.Skipped))
	cfg.Recorder.ObserveQuery(metrics.OutcomeFound, time.Since(began))

	return path, nil
}

// Reconstruct rebuilds the path to end from the predecessors in res.
// It returns nil when end was not reached from res.Start or is out of range.
//
// The list is seeded with the destination, then every predecessor is
// inserted at the front, so it reads start → … → end.
func Reconstruct(g *core.Graph, res *Result, end int) *Path {
	if g == nil || res == nil || end < 0 || end >= len(res.Prev) {
		return nil
	}
	if res.Prev[end] == NoPredecessor && end != res.Start {
		return nil
	}

	endID, ok := g.NodeID(end)
	if !ok {
		return nil
	}
	path := newPath(endID)
	path.Distance = res.Dist[end]

	// The walk is bounded by the node count; predecessor chains are acyclic.
	cur := end
	for steps := 0; res.Prev[cur] != NoPredecessor && steps < len(res.Prev); steps++ {
		cur = res.Prev[cur]
		id, _ := g.NodeID(cur)
		path.Nodes.InsertFirst(id)
	}

	return path
}

func newPath(id string) *Path {
	l := strlist.New()
	l.InsertLast(id)

	return &Path{Distance: 0, Nodes: l}
}

// Len returns the number of nodes on the path, endpoints included.
func (p *Path) Len() int { return p.Nodes.Len() }

// IDs returns the node identifiers from start to end.
func (p *Path) IDs() []string { return p.Nodes.Values() }

// String formats the path as "path (distance = 5): [A, B, C]".
func (p *Path) String() string {
	return fmt.Sprintf("path (distance = %g): %s", p.Distance, p.Nodes)
}

// Print writes p to w, or "path: none" when p is nil.
func Print(w io.Writer, p *Path) error {
	if p == nil {
		_, err := fmt.Fprintln(w, "path: none")
		return err
	}
	_, err := fmt.Fprintln(w, p.String())

	return err
}
