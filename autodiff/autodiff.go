// Copyright 2025 The SlangPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation over lane vectors.
//
// The package implements reverse-mode automatic differentiation
// (backpropagation) using a gradient tape: the Engine computes forward
// operations and records them, and walking the tape backwards yields a
// gradient per input vector. Activations carrying an explicit backward rule
// (see nn.Sigmoid) have that rule invoked in place of the engine's derived
// one.
//
// Example:
//
//	import (
//	    "github.com/Mourtz/slangpy/autodiff"
//	    "github.com/Mourtz/slangpy/nn"
//	    "github.com/Mourtz/slangpy/vec"
//	)
//
//	func main() {
//	    eng := autodiff.New[float32]()
//	    eng.Tape().StartRecording()
//
//	    x := vec.FromSlice([]float32{-1, 0, 1})
//	    y := nn.NewSigmoid(3, eng).Forward(x)
//
//	    grads := eng.Tape().Backward(vec.Ones[float32](y.Width()))
//	    fmt.Println(grads[x].Data())
//	}
package autodiff

import (
	"github.com/Mourtz/slangpy/internal/autodiff"
	"github.com/Mourtz/slangpy/internal/scalar"
)

// Engine computes differentiable vector operations and records them on a
// gradient tape.
type Engine[T scalar.Float] = autodiff.Engine[T]

// Tape records operations for automatic differentiation.
type Tape[T scalar.Float] = autodiff.Tape[T]

// New creates a new engine with an empty tape.
func New[T scalar.Float]() *Engine[T] {
	return autodiff.New[T]()
}

// NewTape creates a new gradient tape.
func NewTape[T scalar.Float]() *Tape[T] {
	return autodiff.NewTape[T]()
}
