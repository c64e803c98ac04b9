package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mourtz/slangpy/internal/activation"
	"github.com/Mourtz/slangpy/internal/autodiff"
	"github.com/Mourtz/slangpy/internal/vec"
)

var (
	_ Module[float32] = (*Elementwise[float32])(nil)
	_ Module[float32] = (*FrequencyEncoding[float32])(nil)
)

func TestElementwiseForward(t *testing.T) {
	eng := autodiff.New[float32]()
	relu := NewReLU(4, eng)

	out := relu.Forward(vec.FromSlice([]float32{-2, -1, 1, 2}))
	assert.Equal(t, []float32{0, 0, 1, 2}, out.Data())
}

func TestElementwiseWidths(t *testing.T) {
	eng := autodiff.New[float32]()
	m := NewElementwise[float32](activation.Swish[float32]{}, 7, eng)

	assert.Equal(t, 7, m.InputWidth())
	assert.Equal(t, 7, m.OutputWidth())
}

// TestElementwiseLaneIndependence applies a module to a vector and checks
// that, per lane, the result is exactly the scalar activation's value for
// that lane's input, regardless of what the other lanes hold.
func TestElementwiseLaneIndependence(t *testing.T) {
	eng := autodiff.New[float64]()
	act := activation.Swish[float64]{}
	m := NewElementwise[float64](act, 3, eng)

	a := m.Forward(vec.FromSlice([]float64{-1, 0.5, 2}))
	b := m.Forward(vec.FromSlice([]float64{99, 0.5, -99}))

	for i, x := range []float64{-1, 0.5, 2} {
		assert.Equal(t, act.Activate(x), a.At(i), "lane %d", i)
	}
	// Lane 1's result is identical even though its neighbors changed.
	assert.Equal(t, a.At(1), b.At(1))
}

func TestElementwiseWidthMismatchPanics(t *testing.T) {
	eng := autodiff.New[float32]()
	m := NewReLU(3, eng)

	assert.Panics(t, func() {
		m.Forward(vec.FromSlice([]float32{1, 2}))
	})
}

func TestElementwiseConstructionPanics(t *testing.T) {
	eng := autodiff.New[float32]()

	assert.Panics(t, func() {
		NewElementwise[float32](activation.ReLU[float32]{}, 0, eng)
	})
	assert.Panics(t, func() {
		NewElementwise[float32](activation.ReLU[float32]{}, 4, nil)
	})
}

// TestLiftedBackward checks gradients flow through the adapter per lane.
func TestLiftedBackward(t *testing.T) {
	eng := autodiff.New[float64]()
	eng.Tape().StartRecording()

	m := NewSigmoid(2, eng)
	x := vec.FromSlice([]float64{-1, 2})
	y := m.Forward(x)

	grads := eng.Tape().Backward(vec.Ones[float64](y.Width()))
	xGrad := grads[x]
	assert.NotNil(t, xGrad)

	for i, xv := range x.Data() {
		s := 1 / (1 + math.Exp(-xv))
		assert.InDelta(t, s*(1-s), xGrad.At(i), 1e-12, "lane %d", i)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	eng := autodiff.New[float32]()

	assert.IsType(t, activation.ReLU[float32]{}, NewReLU(1, eng).Activation())
	assert.IsType(t, activation.Sigmoid[float32]{}, NewSigmoid(1, eng).Activation())
	assert.IsType(t, activation.Tanh[float32]{}, NewTanh(1, eng).Activation())
}
