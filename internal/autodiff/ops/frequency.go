package ops

import (
	"github.com/Mourtz/slangpy/internal/scalar"
	"github.com/Mourtz/slangpy/internal/vec"
)

// FrequencyOp represents the multi-scale sinusoidal encoding:
// for input lane i and scale j, the output holds sin(2^j·π·x[i]) at offset
// i·numScales·2 + j·2 and cos(2^j·π·x[i]) at the next lane.
//
// Backward pass, from the closed-form trig derivatives:
//   - d sin(2^j·π·x)/dx =  2^j·π·cos(2^j·π·x)
//   - d cos(2^j·π·x)/dx = −2^j·π·sin(2^j·π·x)
//
// Both factors are read from the stored forward output, so no transcendental
// evaluation happens during backward.
type FrequencyOp[T scalar.Float] struct {
	input     *vec.Vector[T] // x, width numInputs
	output    *vec.Vector[T] // interleaved sin/cos pairs, width 2·numScales·numInputs
	numScales int
}

// NewFrequencyOp creates a new frequency encoding operation.
func NewFrequencyOp[T scalar.Float](input, output *vec.Vector[T], numScales int) *FrequencyOp[T] {
	return &FrequencyOp[T]{
		input:     input,
		output:    output,
		numScales: numScales,
	}
}

// Inputs returns the input vector [x].
func (op *FrequencyOp[T]) Inputs() []*vec.Vector[T] {
	return []*vec.Vector[T]{op.input}
}

// Output returns the encoded output vector.
func (op *FrequencyOp[T]) Output() *vec.Vector[T] {
	return op.output
}

// Backward accumulates, per input lane, the gradient contributions of its
// 2·numScales output lanes. Lanes of distinct inputs stay independent.
func (op *FrequencyOp[T]) Backward(outputGrad *vec.Vector[T]) []*vec.Vector[T] {
	gData := outputGrad.Data()
	yData := op.output.Data()
	inputGrad := vec.New[T](op.input.Width())
	igData := inputGrad.Data()

	pi := scalar.Pi[T]()
	for i := range igData {
		base := i * op.numScales * 2
		var acc T
		factor := pi // 2^j·π, doubled each scale
		for j := 0; j < op.numScales; j++ {
			sin := yData[base+j*2]
			cos := yData[base+j*2+1]
			acc += factor * (gData[base+j*2]*cos - gData[base+j*2+1]*sin)
			factor *= 2
		}
		igData[i] = acc
	}
	return []*vec.Vector[T]{inputGrad}
}
