// Package nn implements differentiable modules over fixed-width vectors.
//
// This package provides the building blocks a host network pipeline composes:
//   - Module interface: fixed-width forward contract
//   - Elementwise: lifts any scalar activation into a vector module
//   - FrequencyEncoding: multi-scale sinusoidal positional features
//
// Modules are pure: forward output is a function of the input vector and the
// module's immutable configuration. Gradients flow back through the engine's
// tape.
package nn

import (
	"github.com/Mourtz/slangpy/internal/scalar"
	"github.com/Mourtz/slangpy/internal/vec"
)

// Module is the contract every differentiable component implements: a
// forward operation over a fixed input width producing a fixed output width.
//
// Forward panics if the input's width differs from InputWidth; widths are
// part of a module's identity, fixed at construction.
type Module[T scalar.Float] interface {
	// Forward computes the module's output for the given input vector.
	Forward(input *vec.Vector[T]) *vec.Vector[T]

	// InputWidth returns the lane count the module consumes.
	InputWidth() int

	// OutputWidth returns the lane count the module produces.
	OutputWidth() int
}
