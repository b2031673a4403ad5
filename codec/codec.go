// SPDX-License-Identifier: MIT
// Package: graphfuzz/codec
//
// codec.go: Codec[T] with JSON and MessagePack formats.

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/graphfuzz/core"
)

// Format names a wire encoding.
type Format string

// Supported formats.
const (
	FormatJSON    Format = "json"
	FormatMsgPack Format = "msgpack"
)

// jsonIndent matches the indented layout corpus files have always used.
const jsonIndent = "  "

// Sentinel errors; branch with errors.Is.
var (
	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrMalformed indicates bytes that do not decode in the selected format.
	ErrMalformed = errors.New("codec: malformed data")

	// ErrInvalidGraph indicates decoded data that violates structural validity.
	ErrInvalidGraph = errors.New("codec: invalid graph")
)

// wireGraph is the persisted shape of a graph.
type wireGraph[T any] struct {
	Nodes []wireNode[T] `json:"nodes" msgpack:"nodes"`
}

// wireNode is the persisted shape of a node.
type wireNode[T any] struct {
	Data  T     `json:"data" msgpack:"data"`
	Edges []int `json:"edges" msgpack:"edges"`
}

// ParseFormat resolves a case-insensitive format name ("json", "msgpack"/"mp").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMsgPack), "mp":
		return FormatMsgPack, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// Codec encodes and decodes Graph[T] values in one Format.
// A Codec is stateless and safe for concurrent use.
type Codec[T any] struct {
	format Format
}

// New returns a Codec for the given format.
//
// Errors:
//   - ErrUnknownFormat for anything but FormatJSON / FormatMsgPack.
func New[T any](format Format) (*Codec[T], error) {
	switch format {
	case FormatJSON, FormatMsgPack:
		return &Codec[T]{format: format}, nil
	default:
		return nil, fmt.Errorf("codec.New(%q): %w", format, ErrUnknownFormat)
	}
}

// Format reports the codec's wire format.
func (c *Codec[T]) Format() Format { return c.format }

// Encode serializes g.
//
// Implementation:
//   - Stage 1: Snapshot nodes into the wire shape; empty edge lists are
//     written as [] rather than null.
//   - Stage 2: Marshal in the codec's format.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - Payload marshalling errors, wrapped.
//
// Complexity:
//   - Time O(V+E) plus payload encoding, Space O(output).
func (c *Codec[T]) Encode(g *core.Graph[T]) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("codec: Encode: %w", core.ErrNilGraph)
	}
	w := toWire(g)

	switch c.format {
	case FormatMsgPack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetSortMapKeys(true)
		if err := enc.Encode(&w); err != nil {
			return nil, fmt.Errorf("codec: Encode msgpack: %w", err)
		}
		return buf.Bytes(), nil
	default:
		out, err := json.MarshalIndent(&w, "", jsonIndent)
		if err != nil {
			return nil, fmt.Errorf("codec: Encode json: %w", err)
		}
		return out, nil
	}
}

// Decode parses data and rebuilds a structurally valid graph.
//
// Implementation:
//   - Stage 1: Unmarshal into the wire shape.
//   - Stage 2: AddNode for every node, in order.
//   - Stage 3: AddEdge for every edge; the first out-of-range target aborts.
//
// Errors:
//   - ErrMalformed when the bytes do not parse.
//   - ErrInvalidGraph when an edge target is outside the node range.
//
// Complexity:
//   - Time O(V+E) plus payload decoding.
func (c *Codec[T]) Decode(data []byte) (*core.Graph[T], error) {
	var w wireGraph[T]

	switch c.format {
	case FormatMsgPack:
		if err := msgpack.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("codec: Decode msgpack: %v: %w", err, ErrMalformed)
		}
	default:
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("codec: Decode json: %v: %w", err, ErrMalformed)
		}
	}

	return fromWire(w)
}

// toWire snapshots g into the persisted shape.
func toWire[T any](g *core.Graph[T]) wireGraph[T] {
	w := wireGraph[T]{Nodes: make([]wireNode[T], g.Len())}
	for i := range w.Nodes {
		n, _ := g.Node(i)
		w.Nodes[i] = wireNode[T]{Data: n.Data, Edges: n.Edges()}
	}

	return w
}

// fromWire rebuilds a graph through the core edit primitives.
func fromWire[T any](w wireGraph[T]) (*core.Graph[T], error) {
	g := core.New[T]()
	for i := range w.Nodes {
		g.AddNode(w.Nodes[i].Data)
	}
	for i := range w.Nodes {
		for s, t := range w.Nodes[i].Edges {
			if !g.AddEdge(i, t) {
				return nil, fmt.Errorf("codec: node %d slot %d → %d (nodes=%d): %w",
					i, s, t, len(w.Nodes), ErrInvalidGraph)
			}
		}
	}

	return g, nil
}
