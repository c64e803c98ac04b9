package ops

import (
	"fmt"

	"github.com/Mourtz/slangpy/internal/activation"
	"github.com/Mourtz/slangpy/internal/scalar"
	"github.com/Mourtz/slangpy/internal/vec"
)

// ElementwiseOp represents a scalar activation lifted over a fixed-width
// vector: output[i] = act(input[i]) for every lane i.
//
// Backward pass:
//   - If the activation implements BackwardActivation, its explicit rule is
//     invoked per lane with the primal input and the incoming gradient.
//   - Otherwise the engine's derived local-derivative rule for the variant is
//     applied: grad_input[i] = grad_output[i] * f'(input[i]).
//
// Gradient flow is lane-local; lane i never reads another lane.
type ElementwiseOp[T scalar.Float] struct {
	act    activation.Activation[T]
	input  *vec.Vector[T] // x
	output *vec.Vector[T] // act(x), lane by lane
}

// NewElementwiseOp creates a new elementwise activation operation.
func NewElementwiseOp[T scalar.Float](act activation.Activation[T], input, output *vec.Vector[T]) *ElementwiseOp[T] {
	return &ElementwiseOp[T]{
		act:    act,
		input:  input,
		output: output,
	}
}

// Inputs returns the input vector [x].
func (op *ElementwiseOp[T]) Inputs() []*vec.Vector[T] {
	return []*vec.Vector[T]{op.input}
}

// Output returns the output vector act(x).
func (op *ElementwiseOp[T]) Output() *vec.Vector[T] {
	return op.output
}

// Policy returns the activation's backward memory hint. A scheduler may drop
// the stored output of a PolicyRecompute op; its backward never reads it.
func (op *ElementwiseOp[T]) Policy() activation.Policy {
	return activation.PolicyOf(op.act)
}

// Backward computes the input gradient lane by lane.
func (op *ElementwiseOp[T]) Backward(outputGrad *vec.Vector[T]) []*vec.Vector[T] {
	xData := op.input.Data()
	gData := outputGrad.Data()
	inputGrad := vec.New[T](op.input.Width())
	igData := inputGrad.Data()

	if bwd, ok := op.act.(activation.BackwardActivation[T]); ok {
		// Explicit rule supplied by the activation.
		for i := range xData {
			igData[i] = bwd.ActivateBwd(xData[i], gData[i]).Grad
		}
		return []*vec.Vector[T]{inputGrad}
	}

	yData := op.output.Data()
	for i := range xData {
		igData[i] = gData[i] * localDerivative(op.act, xData[i], yData[i])
	}
	return []*vec.Vector[T]{inputGrad}
}

// localDerivative is the engine's derived rule catalog: the local derivative
// f'(x) of each activation variant, evaluated at primal x with forward value
// y = f(x) available for rules that read the output.
//
// Subgradient convention at kinks: ReLU, LeakyReLU and ELU take the
// negative-side derivative at x = 0.
func localDerivative[T scalar.Float](act activation.Activation[T], x, y T) T {
	switch a := act.(type) {
	case activation.None[T]:
		return 1

	case activation.ReLU[T]:
		// d(max(x, 0))/dx = 1 if x > 0, else 0.
		if x > 0 {
			return 1
		}
		return 0

	case activation.LeakyReLU[T]:
		if x > 0 {
			return 1
		}
		return a.Slope

	case activation.ELU[T]:
		// For x <= 0: f(x) = a·(exp(−x) − 1), so f'(x) = −a·exp(−x).
		if x > 0 {
			return 1
		}
		return -a.A * scalar.Exp(-x)

	case activation.Swish[T]:
		// f(x) = x·σ(x), so f'(x) = σ(x) + x·σ(x)·(1 − σ(x)).
		s := 1 / (1 + scalar.Exp(-x))
		return s + x*s*(1-s)

	case activation.Tanh[T]:
		// d(tanh(x))/dx = 1 − tanh²(x), using the stored output.
		return 1 - y*y

	case activation.Exp[T]:
		// d(exp(x))/dx = exp(x), using the stored output.
		return y

	default:
		panic(fmt.Sprintf("ops: no derived backward rule for activation %T", act))
	}
}
