// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// hooks.go: hashing and serialization hooks for the host fuzzing loop.

package generator

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/graphfuzz/codec"
	"github.com/katalvlaran/graphfuzz/core"
)

// Hash writes the canonical structural stream of g into w (see codec.Hash).
func (gg *GraphGenerator[T]) Hash(g *core.Graph[T], w io.Writer) error {
	return codec.Hash(g, w)
}

// ToData encodes g in the generator's wire format.
func (gg *GraphGenerator[T]) ToData(g *core.Graph[T]) ([]byte, error) {
	return gg.codec.Encode(g)
}

// FromData decodes data into a structurally valid graph.
// Malformed or invalid input yields (nil, false); the caller should discard it.
func (gg *GraphGenerator[T]) FromData(data []byte) (*core.Graph[T], bool) {
	g, err := gg.codec.Decode(data)
	if err != nil {
		gg.logger.Debug("rejected corpus entry",
			slog.Int("bytes", len(data)),
			slog.String("format", string(gg.codec.Format())),
			slog.Any("err", err))
		return nil, false
	}

	return g, true
}
