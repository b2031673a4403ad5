// SPDX-License-Identifier: MIT

// Package payload provides ready-made node payload generators for graphfuzz.
//
// Both generators satisfy generator.PayloadGenerator:
//
//	NewInput(maxComplexity float64) T
//	Mutate(value *T, spareComplexity float64) bool
//
// Int[T] covers every integer kind and ignores the complexity budget, since a
// fixed-width integer always costs the same. Bytes grows and shrinks byte
// strings, treating each byte as one unit of complexity.
//
// Generators own their *rand.Rand and are not safe for concurrent use.
package payload
