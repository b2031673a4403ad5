// Package codec turns core graphs into corpus bytes and back, and computes the
// structural hash used for corpus deduplication.
//
// Formats:
//
//	json     indented JSON, {"nodes":[{"data":<T>,"edges":[...]}, ...]}
//	msgpack  MessagePack with the same field names
//
// Decoding never trusts its input: graphs are rebuilt through core.AddNode /
// core.AddEdge, so an edge pointing outside the node range is rejected with
// ErrInvalidGraph instead of producing a structurally invalid graph.
//
// Hashing writes a canonical byte stream (node count, per node the
// MessagePack payload with sorted map keys, edge count and targets) into any
// io.Writer. Equal graphs always produce equal streams, in every process.
package codec
