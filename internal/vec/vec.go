// Package vec provides the fixed-width lane vector every module consumes and
// produces.
//
// A Vector has identity semantics: the autodiff tape keys gradients by
// *Vector pointer, so the same vector fed into two operations accumulates one
// gradient. Cloning yields a new identity.
package vec

import (
	"fmt"

	"github.com/Mourtz/slangpy/internal/scalar"
)

// Vector is a fixed-width buffer of independent lanes.
//
// The width is fixed at construction and never changes. Lane elements are
// mutable through Data; modules treat their inputs as read-only.
type Vector[T scalar.Float] struct {
	data []T
}

// New creates a zero-filled vector of the given width.
//
// Panics if width is not positive.
func New[T scalar.Float](width int) *Vector[T] {
	if width <= 0 {
		panic(fmt.Sprintf("vec: width must be positive, got %d", width))
	}
	return &Vector[T]{data: make([]T, width)}
}

// FromSlice creates a vector owning a copy of vals.
//
// Panics if vals is empty.
func FromSlice[T scalar.Float](vals []T) *Vector[T] {
	if len(vals) == 0 {
		panic("vec: cannot create vector from empty slice")
	}
	data := make([]T, len(vals))
	copy(data, vals)
	return &Vector[T]{data: data}
}

// Width returns the lane count.
func (v *Vector[T]) Width() int {
	return len(v.data)
}

// Data returns the backing lane slice.
func (v *Vector[T]) Data() []T {
	return v.data
}

// At returns the value of lane i.
func (v *Vector[T]) At(i int) T {
	return v.data[i]
}

// Clone returns a copy of v with a new identity.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(v.data)
}

// Fill sets every lane to val.
func (v *Vector[T]) Fill(val T) {
	for i := range v.data {
		v.data[i] = val
	}
}

// Ones creates a vector of the given width with every lane set to one.
// Commonly used as the seed gradient for a backward pass.
func Ones[T scalar.Float](width int) *Vector[T] {
	v := New[T](width)
	v.Fill(1)
	return v
}
