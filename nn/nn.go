// Copyright 2025 The SlangPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/Mourtz/slangpy/internal/activation"
	ad "github.com/Mourtz/slangpy/internal/autodiff"
	"github.com/Mourtz/slangpy/internal/nn"
	"github.com/Mourtz/slangpy/internal/scalar"
)

// Module is the base contract for all differentiable components: a forward
// operation over a fixed input width producing a fixed output width.
type Module[T scalar.Float] = nn.Module[T]

// Activation is the scalar activation contract.
type Activation[T scalar.Float] = activation.Activation[T]

// BackwardActivation is an activation that supplies its own backward rule,
// invoked by the engine in place of its derived one.
type BackwardActivation[T scalar.Float] = activation.BackwardActivation[T]

// Policy is the store-versus-recompute hint an activation exposes to the
// memory scheduler driving the backward pass.
type Policy = activation.Policy

// Backward-pass memory policies.
const (
	PolicyStore     = activation.PolicyStore
	PolicyRecompute = activation.PolicyRecompute
)

// PolicyOf returns the backward policy hinted by an activation, defaulting
// to PolicyStore.
func PolicyOf(act any) Policy { return activation.PolicyOf(act) }

// Activation variants. Each is a pure scalar transform; lift one into a
// vector module with NewElementwise.
type (
	// None is the identity activation.
	None[T scalar.Float] = activation.None[T]
	// ReLU is f(x) = max(x, 0).
	ReLU[T scalar.Float] = activation.ReLU[T]
	// LeakyReLU is f(x) = max(x, 0) + slope·min(x, 0).
	LeakyReLU[T scalar.Float] = activation.LeakyReLU[T]
	// ELU is f(x) = a·(exp(−min(x, 0)) − 1) + max(x, 0).
	ELU[T scalar.Float] = activation.ELU[T]
	// Swish is f(x) = x / (1 + exp(−x)).
	Swish[T scalar.Float] = activation.Swish[T]
	// Tanh is f(x) = tanh(x).
	Tanh[T scalar.Float] = activation.Tanh[T]
	// Sigmoid is σ(x) = 1 / (1 + exp(−x)), with an explicit backward rule
	// that recomputes σ from the primal input.
	Sigmoid[T scalar.Float] = activation.Sigmoid[T]
	// Exp is f(x) = exp(x).
	Exp[T scalar.Float] = activation.Exp[T]
)

// NewLeakyReLU creates a LeakyReLU activation with the given negative slope.
func NewLeakyReLU[T scalar.Float](slope T) LeakyReLU[T] {
	return activation.NewLeakyReLU(slope)
}

// NewELU creates an ELU activation with the given negative-side scale.
func NewELU[T scalar.Float](a T) ELU[T] {
	return activation.NewELU(a)
}

// Elementwise lifts a scalar activation into a fixed-width vector module.
type Elementwise[T scalar.Float] = nn.Elementwise[T]

// NewElementwise lifts act into a module of the given width.
func NewElementwise[T scalar.Float](act Activation[T], width int, engine *ad.Engine[T]) *Elementwise[T] {
	return nn.NewElementwise(act, width, engine)
}

// NewReLU creates a ReLU module of the given width.
func NewReLU[T scalar.Float](width int, engine *ad.Engine[T]) *Elementwise[T] {
	return nn.NewReLU(width, engine)
}

// NewSigmoid creates a Sigmoid module of the given width.
func NewSigmoid[T scalar.Float](width int, engine *ad.Engine[T]) *Elementwise[T] {
	return nn.NewSigmoid(width, engine)
}

// NewTanh creates a Tanh module of the given width.
func NewTanh[T scalar.Float](width int, engine *ad.Engine[T]) *Elementwise[T] {
	return nn.NewTanh(width, engine)
}

// FrequencyEncoding maps coordinates to multi-scale sinusoidal features.
type FrequencyEncoding[T scalar.Float] = nn.FrequencyEncoding[T]

// MaxFrequencyScales is the largest supported scale count; see the
// FrequencyEncoding documentation for the drift bound behind it.
const MaxFrequencyScales = nn.MaxFrequencyScales

// NewFrequencyEncoding creates a frequency encoding of numInputs coordinates
// at numScales octaves.
func NewFrequencyEncoding[T scalar.Float](numInputs, numScales int, engine *ad.Engine[T]) *FrequencyEncoding[T] {
	return nn.NewFrequencyEncoding[T](numInputs, numScales, engine)
}
