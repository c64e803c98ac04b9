package nn

import (
	"fmt"

	"github.com/Mourtz/slangpy/internal/activation"
	"github.com/Mourtz/slangpy/internal/autodiff"
	"github.com/Mourtz/slangpy/internal/scalar"
	"github.com/Mourtz/slangpy/internal/vec"
)

// Elementwise lifts a scalar activation into a fixed-width vector module.
//
// The adapter is defined once, generically over the activation contract:
// any Activation gains vector behavior through it without redefining
// anything. Forward applies the scalar transform independently to each lane
// in lane order; backward — whether the engine's derived rule or the
// activation's explicit one — is applied per lane with no cross-lane
// coupling.
//
// Example:
//
//	relu := nn.NewElementwise[float32](activation.ReLU[float32]{}, 64, eng)
//	output := relu.Forward(input) // width 64 in, width 64 out
type Elementwise[T scalar.Float] struct {
	act    activation.Activation[T]
	width  int
	engine *autodiff.Engine[T]
}

// NewElementwise lifts act into a module of input and output width `width`.
//
// Panics if width is not positive or engine is nil.
func NewElementwise[T scalar.Float](act activation.Activation[T], width int, engine *autodiff.Engine[T]) *Elementwise[T] {
	if width <= 0 {
		panic(fmt.Sprintf("Elementwise: width must be positive, got %d", width))
	}
	if engine == nil {
		panic("Elementwise: engine must not be nil")
	}
	return &Elementwise[T]{
		act:    act,
		width:  width,
		engine: engine,
	}
}

// Forward applies the scalar activation to each lane of input.
//
// Panics if input's width differs from the module's declared width.
func (m *Elementwise[T]) Forward(input *vec.Vector[T]) *vec.Vector[T] {
	if input.Width() != m.width {
		panic(fmt.Sprintf("Elementwise: input width %d does not match declared width %d", input.Width(), m.width))
	}
	return m.engine.Activate(m.act, input)
}

// InputWidth returns the module's lane count.
func (m *Elementwise[T]) InputWidth() int {
	return m.width
}

// OutputWidth returns the module's lane count.
func (m *Elementwise[T]) OutputWidth() int {
	return m.width
}

// Activation returns the wrapped scalar activation.
func (m *Elementwise[T]) Activation() activation.Activation[T] {
	return m.act
}

// NewReLU creates a ReLU module of the given width.
func NewReLU[T scalar.Float](width int, engine *autodiff.Engine[T]) *Elementwise[T] {
	return NewElementwise[T](activation.ReLU[T]{}, width, engine)
}

// NewSigmoid creates a Sigmoid module of the given width.
func NewSigmoid[T scalar.Float](width int, engine *autodiff.Engine[T]) *Elementwise[T] {
	return NewElementwise[T](activation.Sigmoid[T]{}, width, engine)
}

// NewTanh creates a Tanh module of the given width.
func NewTanh[T scalar.Float](width int, engine *autodiff.Engine[T]) *Elementwise[T] {
	return NewElementwise[T](activation.Tanh[T]{}, width, engine)
}
