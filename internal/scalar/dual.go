package scalar

// Dual pairs a primal value with its gradient/tangent.
//
// It is the differential representation passed across the backward-pass
// boundary: an explicit backward rule receives the primal input and the
// incoming gradient and returns the updated pair. Duals are transient; they
// exist only for the duration of one backward call.
type Dual[T Float] struct {
	Value T // Primal value.
	Grad  T // Gradient with respect to the primal.
}
