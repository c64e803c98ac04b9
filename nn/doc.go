// Copyright 2025 The SlangPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides differentiable building blocks over fixed-width
// vectors.
//
// # Overview
//
// This package contains:
//   - Module interface: the fixed-width forward contract
//   - Activations: None, ReLU, LeakyReLU, ELU, Swish, Tanh, Sigmoid, Exp
//   - Elementwise: lifts any scalar activation into a vector module
//   - FrequencyEncoding: multi-scale sinusoidal positional features
//
// # Basic Usage
//
//	import (
//	    "github.com/Mourtz/slangpy/autodiff"
//	    "github.com/Mourtz/slangpy/nn"
//	    "github.com/Mourtz/slangpy/vec"
//	)
//
//	func main() {
//	    eng := autodiff.New[float32]()
//
//	    relu := nn.NewReLU(4, eng)
//	    output := relu.Forward(vec.FromSlice([]float32{-2, -1, 1, 2}))
//	    // output: [0, 0, 1, 2]
//	}
//
// # Activations
//
// Every activation is a pure scalar transform satisfying the Activation
// contract; the Elementwise adapter gives each one vector behavior for free,
// applying the scalar function independently to every lane:
//
//	swish := nn.NewElementwise[float32](nn.Swish[float32]{}, 64, eng)
//	leaky := nn.NewElementwise[float32](nn.NewLeakyReLU[float32](0.01), 64, eng)
//
// # Differentiation
//
// Forward operations are recorded on the engine's tape while it is
// recording; walking the tape backwards yields a gradient per input vector.
// The engine derives each activation's backward rule itself, except where a
// variant carries an explicit rule: Sigmoid's backward recomputes σ(x) from
// the primal input instead of reading a stored output, and hints
// PolicyRecompute so a memory scheduler knows the stored output is not
// needed.
//
//	eng.Tape().StartRecording()
//	y := nn.NewSigmoid(3, eng).Forward(x)
//	grads := eng.Tape().Backward(vec.Ones[float32](3))
//
// # Frequency Encoding
//
// FrequencyEncoding maps numInputs coordinates to 2·numScales·numInputs
// features, sin(2^j·π·x) and cos(2^j·π·x) interleaved per scale. A single
// combined sine/cosine evaluation seeds each lane; higher scales come from
// the double-angle recurrence.
//
//	enc := nn.NewFrequencyEncoding[float32](2, 6, eng)
//	features := enc.Forward(coords) // width 2 -> width 24
package nn
