// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// options.go: functional options for New.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (nil rng, nil logger).
//   • Values that may come from files (weights, format) are validated by New
//     and surface as errors instead.

package generator

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/graphfuzz/codec"
)

// Option customizes a GraphGenerator before construction.
type Option func(*generatorConfig)

// WithSeed seeds a private *rand.Rand. Use it to make runs reproducible.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit random source. The generator becomes its
// single owner; do not draw from r elsewhere. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithWeights replaces the operator weight table. New rejects negative
// weights or an all-zero table with ErrInvalidWeights.
func WithWeights(ws Weights) Option {
	return func(c *generatorConfig) {
		c.weights = ws
	}
}

// WithFormat selects the ToData/FromData wire format (default JSON).
func WithFormat(f codec.Format) Option {
	return func(c *generatorConfig) {
		c.format = f
	}
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *generatorConfig) {
		c.logger = l
	}
}

// WithMetrics records operator outcomes into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *generatorConfig) {
		c.metrics = m
	}
}
