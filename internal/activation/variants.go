package activation

import "github.com/Mourtz/slangpy/internal/scalar"

// None is the identity activation: f(x) = x.
type None[T scalar.Float] struct{}

// Activate returns x unchanged.
func (None[T]) Activate(x T) T {
	return x
}

// ReLU is the rectified linear unit: f(x) = max(x, 0).
type ReLU[T scalar.Float] struct{}

// Activate applies f(x) = max(x, 0).
func (ReLU[T]) Activate(x T) T {
	return scalar.Max(x, 0)
}

// LeakyReLU is a ReLU with a small slope on the negative side:
// f(x) = max(x, 0) + slope·min(x, 0).
type LeakyReLU[T scalar.Float] struct {
	Slope T // Negative-side slope. Read-only after construction.
}

// NewLeakyReLU creates a LeakyReLU with the given negative slope.
func NewLeakyReLU[T scalar.Float](slope T) LeakyReLU[T] {
	return LeakyReLU[T]{Slope: slope}
}

// Activate applies f(x) = max(x, 0) + slope·min(x, 0).
func (l LeakyReLU[T]) Activate(x T) T {
	return scalar.Max(x, 0) + l.Slope*scalar.Min(x, 0)
}

// ELU is an exponential linear unit:
// f(x) = a·(exp(−min(x, 0)) − 1) + max(x, 0).
type ELU[T scalar.Float] struct {
	A T // Negative-side scale. Read-only after construction.
}

// NewELU creates an ELU with the given negative-side scale.
func NewELU[T scalar.Float](a T) ELU[T] {
	return ELU[T]{A: a}
}

// Activate applies f(x) = a·(exp(−min(x, 0)) − 1) + max(x, 0).
func (e ELU[T]) Activate(x T) T {
	return e.A*(scalar.Exp(-scalar.Min(x, 0))-1) + scalar.Max(x, 0)
}

// Swish is the sigmoid-weighted linear unit: f(x) = x / (1 + exp(−x)).
type Swish[T scalar.Float] struct{}

// Activate applies f(x) = x / (1 + exp(−x)).
func (Swish[T]) Activate(x T) T {
	return x / (1 + scalar.Exp(-x))
}

// Tanh is the hyperbolic tangent activation.
type Tanh[T scalar.Float] struct{}

// Activate applies f(x) = tanh(x).
func (Tanh[T]) Activate(x T) T {
	return scalar.Tanh(x)
}

// Sigmoid is the logistic activation: σ(x) = 1 / (1 + exp(−x)).
//
// Sigmoid carries its own backward rule and prefers recomputation: the rule
// recomputes σ(x) from the primal input instead of reading a stored forward
// output, so the backward pass never needs the activation's output retained.
type Sigmoid[T scalar.Float] struct{}

// Activate applies σ(x) = 1 / (1 + exp(−x)).
func (Sigmoid[T]) Activate(x T) T {
	return 1 / (1 + scalar.Exp(-x))
}

// ActivateBwd propagates grad through σ at primal x.
//
// The local derivative is σ(x)·(1 − σ(x)) with σ(x) recomputed from x.
func (s Sigmoid[T]) ActivateBwd(x, grad T) scalar.Dual[T] {
	v := s.Activate(x)
	return scalar.Dual[T]{Value: x, Grad: grad * v * (1 - v)}
}

// BackwardPolicy reports that Sigmoid's backward rule recomputes rather than
// reads stored outputs.
func (Sigmoid[T]) BackwardPolicy() Policy {
	return PolicyRecompute
}

// Exp is the exponential activation: f(x) = exp(x).
//
// Large inputs overflow to +Inf; the value propagates IEEE-style rather than
// raising an error.
type Exp[T scalar.Float] struct{}

// Activate applies f(x) = exp(x).
func (Exp[T]) Activate(x T) T {
	return scalar.Exp(x)
}
