// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Run entry point and the priority-queue runner.

package dijkstra

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/pathview/core"
)

// Run computes tentative distances and predecessors from start, stopping
// once end is selected (see WithoutEarlyStop). Pass end = core.NotFound to
// explore everything reachable from start.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must be in [0, g.Size()) (ErrIndexOutOfRange).
//  3. end must be in [0, g.Size()) or core.NotFound (ErrIndexOutOfRange).
//
// Complexity: O(V² + E) time, O(V) space.
func Run(g *core.Graph, start, end int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d size=%d", ErrIndexOutOfRange, start, n)
	}
	if end != core.NotFound && (end < 0 || end >= n) {
		return nil, fmt.Errorf("%w: end=%d size=%d", ErrIndexOutOfRange, end, n)
	}

	// 3) Prepare the runner with arrays sized to the node count and one copy
	//    of the identifier map for arc resolution.
	r := &runner{
		g:      g,
		opts:   cfg,
		end:    end,
		index:  g.IndexMap(),
		logger: cfg.Logger.With(slog.String("query", cfg.QueryID)),
		res: &Result{
			Start:    start,
			Dist:     make([]float64, n),
			Prev:     make([]int, n),
			Explored: make([]bool, n),
		},
	}

	// 4) Initialize and run the main loop.
	r.init()
	r.process()

	cfg.Recorder.AddRelaxations(r.res.Relaxations)
	cfg.Recorder.AddSkippedArcs(r.res.Skipped)

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g      *core.Graph    // The input graph; read-only here.
	opts   Options        // Query options.
	end    int            // Destination index or core.NotFound.
	index  map[string]int // Identifier → index, copied once per query.
	logger *slog.Logger   // Logger tagged with the query ID.
	res    *Result        // Working arrays, returned to the caller.
}

// init sets every distance to +Inf and every predecessor to none, then puts
// the source at distance zero.
func (r *runner) init() {
	for i := range r.res.Dist {
		r.res.Dist[i] = math.Inf(1)
		r.res.Prev[i] = NoPredecessor
	}
	r.res.Dist[r.res.Start] = 0
}

// process repeatedly selects the closest unexplored node and relaxes its arcs.
//
// Loop termination conditions:
//
//   - No unexplored node has a finite distance (frontier exhausted).
//   - The selected node is the destination and EarlyStop is on.
func (r *runner) process() {
	for {
		// 1) Select the unexplored node with the minimum finite distance.
		u := r.selectMin()
		if u == core.NotFound {
			r.logger.Debug("frontier exhausted")
			return
		}

		// 2) The destination's distance is final once selected.
		if u == r.end && r.opts.EarlyStop {
			r.logger.Debug("destination selected", slog.Int("node", u), slog.Float64("dist", r.res.Dist[u]))
			return
		}

		// 3) Finalize u and relax its outgoing arcs.
		r.res.Explored[u] = true
		r.relax(u)
	}
}

// selectMin returns the unexplored index with the smallest finite distance,
// the lowest index on ties, or core.NotFound.
func (r *runner) selectMin() int {
	best := core.NotFound
	bestDist := math.Inf(1)
	for i, d := range r.res.Dist {
		if !r.res.Explored[i] && d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// relax tries to improve the distance of every arc target of u.
// Assumes r.res.Dist[u] is final.
func (r *runner) relax(u int) {
	for _, a := range r.g.ArcList(u) {
		// Resolve the target; unknown targets are skipped and counted.
		v, ok := r.index[a.To]
		if !ok || v >= len(r.res.Dist) {
			r.res.Skipped++
			r.logger.Debug("skipping arc with unresolved target",
				slog.Int("from", u), slog.String("to", a.To), slog.Int("weight", a.Weight))
			continue
		}

		// Strictly shorter only: equal-cost alternatives keep the first predecessor.
		nd := r.res.Dist[u] + float64(a.Weight)
		if before := r.res.Dist[v]; nd < before {
			r.res.Dist[v] = nd
			r.res.Prev[v] = u
			r.res.Relaxations++
			if r.opts.OnRelax != nil {
				r.opts.OnRelax(v, before, nd)
			}
		}
	}
}
