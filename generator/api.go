// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// api.go: public contracts and the GraphGenerator constructor.
//
// Contracts:
//   • PayloadGenerator[T] is consumed: it synthesizes and mutates node payloads.
//   • InputGenerator[I] is exposed: the host fuzzing loop drives it.
//   • *GraphGenerator[T] implements InputGenerator[*core.Graph[T]].
//
// Concurrency:
//   • A GraphGenerator owns its *rand.Rand. It is NOT safe for concurrent use;
//     build one generator per worker (see cmd/graphfuzz corpus).

package generator

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/graphfuzz/codec"
	"github.com/katalvlaran/graphfuzz/core"
)

// PayloadGenerator produces and mutates node payloads of type T.
type PayloadGenerator[T any] interface {
	// NewInput synthesizes a fresh payload whose own cost stays within maxComplexity.
	NewInput(maxComplexity float64) T
	// Mutate edits *value in place and reports whether anything changed.
	Mutate(value *T, spareComplexity float64) bool
}

// InputGenerator is the capability a host fuzzing loop needs for inputs of type I.
type InputGenerator[I any] interface {
	BaseInput() I
	NewInput(maxComplexity float64) I
	Mutate(input I, spareComplexity float64) bool
	Complexity(input I) float64
	Hash(input I, w io.Writer) error
	ToData(input I) ([]byte, error)
	FromData(data []byte) (I, bool)
}

// GraphGenerator synthesizes and mutates *core.Graph[T] values.
type GraphGenerator[T any] struct {
	payloads PayloadGenerator[T]
	rng      *rand.Rand
	table    weightedTable
	codec    *codec.Codec[T]
	logger   *slog.Logger
	metrics  *Metrics
}

var _ InputGenerator[*core.Graph[int8]] = (*GraphGenerator[int8])(nil)

// New builds a GraphGenerator over payloads.
//
// Errors:
//   - ErrNilPayloadGenerator if payloads is nil.
//   - ErrInvalidWeights if WithWeights carried a negative weight or a zero total.
//   - codec.ErrUnknownFormat if WithFormat named an unsupported format.
//
// Complexity: O(len(opts) + NumOperators).
func New[T any](payloads PayloadGenerator[T], opts ...Option) (*GraphGenerator[T], error) {
	if payloads == nil {
		return nil, ErrNilPayloadGenerator
	}

	cfg := newGeneratorConfig(opts...)

	table, err := newWeightedTable(cfg.weights)
	if err != nil {
		return nil, fmt.Errorf("generator: New: %w", err)
	}
	c, err := codec.New[T](cfg.format)
	if err != nil {
		return nil, fmt.Errorf("generator: New: %w", err)
	}

	return &GraphGenerator[T]{
		payloads: payloads,
		rng:      cfg.rng,
		table:    table,
		codec:    c,
		logger:   cfg.logger,
		metrics:  cfg.metrics,
	}, nil
}

// Complexity is Σ over nodes of (1 + out-degree), i.e. Len()+EdgeCount().
// A nil graph has complexity 0.
func Complexity[T any](g *core.Graph[T]) float64 {
	if g == nil {
		return 0
	}

	return float64(g.Len() + g.EdgeCount())
}

// BaseInput returns the empty graph.
func (gg *GraphGenerator[T]) BaseInput() *core.Graph[T] { return core.New[T]() }

// Complexity reports the structural cost of g.
func (gg *GraphGenerator[T]) Complexity(g *core.Graph[T]) float64 { return Complexity(g) }

// Format reports the wire format used by ToData and FromData.
func (gg *GraphGenerator[T]) Format() codec.Format { return gg.codec.Format() }

// randIndex draws uniformly from [0,n). n must be positive.
func (gg *GraphGenerator[T]) randIndex(n int) int { return gg.rng.Intn(n) }
