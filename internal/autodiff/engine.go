// Package autodiff implements reverse-mode automatic differentiation over
// fixed-width lane vectors.
//
// Architecture:
//   - Engine: computes forward operations lane by lane and records them
//   - Tape: records operations during the forward pass
//   - ops.Operation: each op computes input gradients given an output gradient
//
// Activations normally get the engine's derived backward rule; a variant
// implementing activation.BackwardActivation overrides it with an explicit
// rule, and its store/recompute preference is visible to the engine as op
// metadata.
//
// Usage:
//
//	eng := autodiff.New[float32]()
//	eng.Tape().StartRecording()
//	y := eng.Activate(activation.Sigmoid[float32]{}, x)
//	grads := eng.Tape().Backward(vec.Ones[float32](y.Width()))
//	fmt.Println(grads[x].Data())
package autodiff

import (
	"github.com/Mourtz/slangpy/internal/activation"
	"github.com/Mourtz/slangpy/internal/autodiff/ops"
	"github.com/Mourtz/slangpy/internal/parallel"
	"github.com/Mourtz/slangpy/internal/scalar"
	"github.com/Mourtz/slangpy/internal/vec"
)

// Engine computes differentiable vector operations and records them on a
// gradient tape. Forward lane loops dispatch through the parallel package;
// this is safe because every operation is lane-independent.
type Engine[T scalar.Float] struct {
	tape *Tape[T]        // Records operations for backpropagation
	par  parallel.Config // Lane dispatch configuration
}

// New creates a new engine with an empty tape and default lane dispatch.
func New[T scalar.Float]() *Engine[T] {
	return &Engine[T]{
		tape: NewTape[T](),
		par:  parallel.DefaultConfig(),
	}
}

// NewWithConfig creates a new engine with the given lane dispatch config.
func NewWithConfig[T scalar.Float](cfg parallel.Config) *Engine[T] {
	return &Engine[T]{
		tape: NewTape[T](),
		par:  cfg,
	}
}

// Tape returns the gradient tape for manual control:
// starting/stopping recording, clearing between iterations, backward.
func (e *Engine[T]) Tape() *Tape[T] {
	return e.tape
}

// Activate applies a scalar activation independently to each lane of x and
// records the operation.
func (e *Engine[T]) Activate(act activation.Activation[T], x *vec.Vector[T]) *vec.Vector[T] {
	result := vec.New[T](x.Width())

	xData := x.Data()
	resData := result.Data()
	parallel.For(x.Width(), func(i int) {
		resData[i] = act.Activate(xData[i])
	}, e.par)

	if e.tape.IsRecording() {
		e.tape.Record(ops.NewElementwiseOp(act, x, result))
	}

	return result
}

// FrequencyEncode maps each input lane x[i] to numScales interleaved
// (sin(2^j·π·x[i]), cos(2^j·π·x[i])) pairs, j in [0, numScales), and records
// the operation.
//
// The base pair (sin(π·x), cos(π·x)) comes from one combined sine/cosine
// evaluation; every higher scale is produced by the double-angle recurrence
//
//	sin(2θ) = 2·sinθ·cosθ
//	cos(2θ) = 2·cos²θ − 1
//
// reusing only the previous scale's pair, so each input lane costs a single
// transcendental evaluation regardless of numScales. The recurrence
// accumulates roughly one ulp of drift per doubling; see nn.FrequencyEncoding
// for the supported scale-count bound.
func (e *Engine[T]) FrequencyEncode(x *vec.Vector[T], numScales int) *vec.Vector[T] {
	result := vec.New[T](x.Width() * numScales * 2)

	xData := x.Data()
	resData := result.Data()
	pi := scalar.Pi[T]()
	parallel.For(x.Width(), func(i int) {
		sin, cos := scalar.Sincos(pi * xData[i])
		base := i * numScales * 2
		for j := 0; j < numScales; j++ {
			resData[base+j*2] = sin
			resData[base+j*2+1] = cos
			sin, cos = 2*sin*cos, 2*cos*cos-1
		}
	}, e.par)

	if e.tape.IsRecording() {
		e.tape.Record(ops.NewFrequencyOp(x, result, numScales))
	}

	return result
}
