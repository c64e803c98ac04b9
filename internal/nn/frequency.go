package nn

import (
	"fmt"

	"github.com/Mourtz/slangpy/internal/autodiff"
	"github.com/Mourtz/slangpy/internal/scalar"
	"github.com/Mourtz/slangpy/internal/vec"
)

// MaxFrequencyScales is the largest supported scale count.
//
// Higher scales are produced by the double-angle recurrence, which
// accumulates floating-point error with every doubling. For the moderate
// scale counts used in positional encodings the drift stays far below the
// features' useful precision (around 1e-6 at 16 scales in float32, 1e-13 in
// float64); beyond a few dozen doublings it exceeds direct evaluation's
// error, so larger counts are rejected at construction rather than silently
// degrading.
const MaxFrequencyScales = 32

// FrequencyEncoding maps a vector of numInputs coordinates to
// 2·numScales·numInputs multi-scale sinusoidal features.
//
// For input lane i and scale j in [0, numScales), the output contains
// sin(2^j·π·x[i]) at offset i·numScales·2 + j·2 and cos(2^j·π·x[i]) at the
// following lane. The encoding is commonly used to let downstream layers
// represent high-frequency content of low-dimensional coordinates.
//
// Example:
//
//	enc := nn.NewFrequencyEncoding[float32](2, 6, eng)
//	features := enc.Forward(coords) // width 2 in, width 24 out
type FrequencyEncoding[T scalar.Float] struct {
	numInputs int
	numScales int
	engine    *autodiff.Engine[T]
}

// NewFrequencyEncoding creates a frequency encoding of numInputs coordinates
// at numScales octaves.
//
// Panics if numInputs or numScales is not positive, or if numScales exceeds
// MaxFrequencyScales.
func NewFrequencyEncoding[T scalar.Float](numInputs, numScales int, engine *autodiff.Engine[T]) *FrequencyEncoding[T] {
	if numInputs <= 0 {
		panic(fmt.Sprintf("FrequencyEncoding: numInputs must be positive, got %d", numInputs))
	}
	if numScales <= 0 {
		panic(fmt.Sprintf("FrequencyEncoding: numScales must be positive, got %d", numScales))
	}
	if numScales > MaxFrequencyScales {
		panic(fmt.Sprintf("FrequencyEncoding: numScales %d exceeds supported maximum %d", numScales, MaxFrequencyScales))
	}
	if engine == nil {
		panic("FrequencyEncoding: engine must not be nil")
	}
	return &FrequencyEncoding[T]{
		numInputs: numInputs,
		numScales: numScales,
		engine:    engine,
	}
}

// Forward encodes each input coordinate into its sin/cos feature pairs.
//
// Panics if input's width differs from the declared number of inputs.
func (f *FrequencyEncoding[T]) Forward(input *vec.Vector[T]) *vec.Vector[T] {
	if input.Width() != f.numInputs {
		panic(fmt.Sprintf("FrequencyEncoding: input width %d does not match declared width %d", input.Width(), f.numInputs))
	}
	return f.engine.FrequencyEncode(input, f.numScales)
}

// InputWidth returns the number of input coordinates.
func (f *FrequencyEncoding[T]) InputWidth() int {
	return f.numInputs
}

// OutputWidth returns 2·numScales·numInputs.
func (f *FrequencyEncoding[T]) OutputWidth() int {
	return 2 * f.numScales * f.numInputs
}

// NumScales returns the number of octaves per input coordinate.
func (f *FrequencyEncoding[T]) NumScales() int {
	return f.numScales
}
