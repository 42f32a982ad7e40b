// SPDX-License-Identifier: MIT
// Package: pathview/builder
//
// weight_fn.go - arc weight functions for generated fixtures.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultArcWeight is the weight used when no WeightFn is configured.
const DefaultArcWeight = 1

// WeightFn produces a non-negative arc weight from an optional random
// source. It must be deterministic for a given seed.
type WeightFn func(rng *rand.Rand) int

// DefaultWeightFn always returns DefaultArcWeight.
func DefaultWeightFn(_ *rand.Rand) int {
	return DefaultArcWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max]
// inclusive. With a nil rng it yields DefaultArcWeight.
// Panics if min < 0 or max < min.
func UniformWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return DefaultArcWeight
		}

		return min + rng.Intn(max-min+1)
	}
}
