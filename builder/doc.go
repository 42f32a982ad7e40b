// Package builder assembles deterministic core.Graph fixtures: straight
// paths, rectangular grids and random sparse graphs.
//
// A fixture is composed from one or more Constructor values passed to
// BuildGraph, which creates the graph, resolves the builder options and
// applies the constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithOriented(false)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Grid(3, 4),
//	)
//
// Every node gets layout coordinates so the fixture can be rendered without
// further work: paths lie on the x axis, grids use x = column and y = row,
// random graphs sit on the unit circle.
//
// Determinism: the same options, seed and constructor order always yield
// the same nodes, arcs and weights.
//
// Errors:
//
//   - ErrTooFewVertices     - a size parameter is below its minimum.
//   - ErrInvalidProbability - p is outside [0, 1].
//   - ErrNeedRandSource     - a random constructor ran without WithSeed/WithRand.
//   - ErrConstructFailed    - a nil constructor was passed to BuildGraph.
//
// Option constructors (WithX) panic on meaningless input; constructors
// themselves never panic.
package builder
