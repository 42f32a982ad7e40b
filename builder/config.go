// SPDX-License-Identifier: MIT
// Package: pathview/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = DefaultIDFn   ("0","1","2",...)
//   - rng      = nil           (random constructors refuse to run)
//   - weightFn = DefaultWeightFn (constant DefaultArcWeight)
//   - spacing  = 1.0           (layout unit between neighbours)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	spacing  float64
}

const defaultSpacing = 1.0

// newBuilderConfig returns the defaults with opts applied in order
// (later options override earlier ones).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
		spacing:  defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one arc weight from the configured generator.
func (c builderConfig) weight() int {
	return c.weightFn(c.rng)
}
