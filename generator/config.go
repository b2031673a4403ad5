// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng     = rand.New(rand.NewSource(defaultSeed))
//   • weights = DefaultWeights()
//   • format  = codec.FormatJSON
//   • logger  = discard
//   • metrics = nil (no collectors)

package generator

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/graphfuzz/codec"
)

// defaultSeed is used when neither WithSeed nor WithRand is given.
const defaultSeed int64 = 1

// generatorConfig aggregates all knobs resolved from Options.
type generatorConfig struct {
	rng     *rand.Rand
	weights Weights
	format  codec.Format
	logger  *slog.Logger
	metrics *Metrics
}

// newGeneratorConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		weights: DefaultWeights(),
		format:  codec.FormatJSON,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	return cfg
}
