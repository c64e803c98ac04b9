// Package activation implements the scalar activation contract and its
// concrete variants.
//
// An Activation is a pure scalar-to-scalar transform. Vector behavior comes
// for free: the nn package lifts any Activation into a fixed-width module by
// applying it independently to each lane. The autodiff engine differentiates
// every variant with its own derived rule unless the variant also implements
// BackwardActivation, in which case the engine must call the explicit rule
// instead.
package activation

import "github.com/Mourtz/slangpy/internal/scalar"

// Activation is the scalar activation contract: a pure function of x and the
// instance's (immutable) parameters.
type Activation[T scalar.Float] interface {
	// Activate applies the transform to a single lane value.
	Activate(x T) T
}

// BackwardActivation is an optional capability: an activation that supplies
// its own backward rule, which the autodiff engine invokes in place of its
// derived one.
//
// ActivateBwd receives the primal input and the incoming gradient and returns
// the updated differential pair for the input. The rule may recompute the
// forward value from the primal rather than reading a stored output; variants
// doing so should also hint PolicyRecompute.
type BackwardActivation[T scalar.Float] interface {
	Activation[T]

	// ActivateBwd propagates grad through the activation at primal x.
	ActivateBwd(x, grad T) scalar.Dual[T]
}

// Policy is the store-versus-recompute hint an activation exposes to the
// memory scheduler driving the backward pass.
type Policy int

// Backward-pass memory policies.
const (
	// PolicyStore prefers retaining the forward output for the backward pass.
	PolicyStore Policy = iota

	// PolicyRecompute prefers recomputing intermediate values from the primal
	// input, trading one extra forward evaluation for not retaining the
	// activation's output.
	PolicyRecompute
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case PolicyStore:
		return "store"
	case PolicyRecompute:
		return "recompute"
	default:
		return "unknown"
	}
}

// PolicyHinter is an optional capability: an activation that declares a
// backward memory policy. Absent the capability, PolicyStore is assumed.
type PolicyHinter interface {
	BackwardPolicy() Policy
}

// PolicyOf returns the backward policy hinted by act, or PolicyStore if act
// does not hint one.
func PolicyOf(act any) Policy {
	if h, ok := act.(PolicyHinter); ok {
		return h.BackwardPolicy()
	}
	return PolicyStore
}
