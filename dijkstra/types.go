// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Errors, Result, Recorder and functional options.

package dijkstra

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathview/strlist"
)

// NoPredecessor marks a node with no predecessor in Result.Prev.
const NoPredecessor = -1

// Sentinel errors returned by the path finder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownEndpoint indicates that a start or end identifier is not a
	// node of the graph.
	ErrUnknownEndpoint = errors.New("dijkstra: unknown endpoint")

	// ErrIndexOutOfRange indicates that a start or end index passed to Run is
	// outside [0, Size()).
	ErrIndexOutOfRange = errors.New("dijkstra: node index out of range")
)

// Recorder receives per-query counters. metrics.Collector implements it.
type Recorder interface {
	ObserveQuery(outcome string, elapsed time.Duration)
	AddRelaxations(n int)
	AddSkippedArcs(n int)
}

// Result holds the working arrays of one Run, indexed by node index.
type Result struct {
	// Start is the source index.
	Start int

	// Dist[i] is the best known distance from Start to i (+Inf if unreached).
	Dist []float64

	// Prev[i] is the predecessor of i on that path, or NoPredecessor.
	Prev []int

	// Explored[i] is true once i was selected and its arcs relaxed.
	Explored []bool

	// Skipped counts arcs whose target could not be resolved.
	Skipped int

	// Relaxations counts successful distance updates.
	Relaxations int
}

// Path is a shortest path: its total distance and the node identifiers from
// start to end, both inclusive.
type Path struct {
	Distance float64
	Nodes    *strlist.List
}

// Options configures a query.
//
// EarlyStop – stop as soon as the destination is selected (default true).
// Logger    – receives debug records; defaults to a discarding logger.
// Recorder  – receives counters; defaults to a no-op.
// QueryID   – correlation ID put on log records; generated when empty.
// OnRelax   – optional hook called after each successful relaxation.
type Options struct {
	EarlyStop bool
	Logger    *slog.Logger
	Recorder  Recorder
	QueryID   string
	OnRelax   func(node int, before, after float64)
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithoutEarlyStop keeps relaxing after the destination is selected, until
// the frontier is exhausted. The resulting destination distance is the same.
func WithoutEarlyStop() Option {
	return func(o *Options) {
		o.EarlyStop = false
	}
}

// WithLogger sets the logger for debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRecorder sets the counter sink. Panics on nil.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("dijkstra: WithRecorder(nil)")
	}
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithQueryID sets the correlation ID used in log records.
func WithQueryID(id string) Option {
	return func(o *Options) {
		o.QueryID = id
	}
}

// WithOnRelax installs a hook called each time a node's tentative distance
// drops from before to after. Panics on nil.
func WithOnRelax(fn func(node int, before, after float64)) Option {
	if fn == nil {
		panic("dijkstra: WithOnRelax(nil)")
	}
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// DefaultOptions returns early stop on, a discarding logger and a no-op
// recorder.
func DefaultOptions() Options {
	return Options{
		EarlyStop: true,
		Logger:    slog.New(slog.DiscardHandler),
		Recorder:  nopRecorder{},
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveQuery(string, time.Duration) {}
func (nopRecorder) AddRelaxations(int)                 {}
func (nopRecorder) AddSkippedArcs(int)                 {}
