// SPDX-License-Identifier: MIT
// Package: graphfuzz/builder
//
// options.go: functional options for BuildGraph.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructor behavior before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a private *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSelfLoops lets RandomSparse draw u→u edges as well.
func WithSelfLoops() BuilderOption {
	return func(c *builderConfig) {
		c.selfLoops = true
	}
}
