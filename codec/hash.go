// SPDX-License-Identifier: MIT
// Package: graphfuzz/codec
//
// hash.go: canonical structural hashing.
//
// Stream layout (all integers uvarint):
//   nodeCount
//   repeat nodeCount times:
//     len(payload) payload   // MessagePack, map keys sorted
//     edgeCount target...

package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/graphfuzz/core"
)

// Hash writes the canonical byte stream of g into w.
//
// Behavior highlights:
//   - Consistent with core.Equal: equal payload sequences and identical edge
//     lists in identical order produce identical streams.
//   - Stable across processes: no pointers, map iteration order or seeds involved.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - Payload encoding errors and w's write errors, wrapped.
//
// Complexity:
//   - Time O(V+E) plus payload encoding; Space O(max payload).
func Hash[T any](g *core.Graph[T], w io.Writer) error {
	if g == nil {
		return fmt.Errorf("codec: Hash: %w", core.ErrNilGraph)
	}

	var (
		payload bytes.Buffer
		scratch []byte
	)
	enc := msgpack.NewEncoder(&payload)
	enc.SetSortMapKeys(true)

	scratch = binary.AppendUvarint(scratch[:0], uint64(g.Len()))
	if _, err := w.Write(scratch); err != nil {
		return fmt.Errorf("codec: Hash: %w", err)
	}

	for i := 0; i < g.Len(); i++ {
		n, _ := g.Node(i)

		payload.Reset()
		if err := enc.Encode(n.Data); err != nil {
			return fmt.Errorf("codec: Hash: node %d payload: %w", i, err)
		}
		scratch = binary.AppendUvarint(scratch[:0], uint64(payload.Len()))
		scratch = append(scratch, payload.Bytes()...)

		edges := n.Edges()
		scratch = binary.AppendUvarint(scratch, uint64(len(edges)))
		for _, t := range edges {
			scratch = binary.AppendUvarint(scratch, uint64(t))
		}
		if _, err := w.Write(scratch); err != nil {
			return fmt.Errorf("codec: Hash: %w", err)
		}
	}

	return nil
}

// Sum64 returns the xxhash64 digest of g's canonical stream.
// Corpus tooling uses it as a content address.
func Sum64[T any](g *core.Graph[T]) (uint64, error) {
	d := xxhash.New()
	if err := Hash(g, d); err != nil {
		return 0, err
	}

	return d.Sum64(), nil
}
