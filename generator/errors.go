// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the failure site.
//   • Structural operations never return errors: they report bool success.

package generator

import "errors"

// ErrNilPayloadGenerator indicates New was called without a payload generator.
var ErrNilPayloadGenerator = errors.New("generator: payload generator is nil")

// ErrInvalidWeights indicates a negative operator weight or an all-zero table.
var ErrInvalidWeights = errors.New("generator: invalid operator weights")

// ErrUnknownOperator indicates an operator name or value outside the fixed set.
var ErrUnknownOperator = errors.New("generator: unknown operator")
