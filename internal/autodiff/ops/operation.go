// Package ops defines the differentiable operations recorded on the gradient
// tape.
//
// Each operation captures its input and output vectors during the forward
// pass and computes input gradients during the backward pass. The backward
// rules for lifted activations live here — the engine derives one rule per
// variant — except where an activation supplies its own explicit rule, which
// takes precedence.
package ops

import (
	"github.com/Mourtz/slangpy/internal/scalar"
	"github.com/Mourtz/slangpy/internal/vec"
)

// Operation represents a differentiable operation in the computation graph.
// It records its inputs and output during the forward pass and computes
// input gradients during the backward pass.
type Operation[T scalar.Float] interface {
	// Backward computes gradients for the inputs given the output gradient.
	// The returned slice corresponds position-wise to Inputs().
	Backward(outputGrad *vec.Vector[T]) []*vec.Vector[T]

	// Inputs returns the input vectors of this operation.
	Inputs() []*vec.Vector[T]

	// Output returns the output vector produced by this operation.
	Output() *vec.Vector[T]
}
