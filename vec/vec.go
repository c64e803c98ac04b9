// Copyright 2025 The SlangPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vec provides the public API for fixed-width lane vectors.
//
// A Vector is the unit of data every module consumes and produces: a buffer
// of lanes whose width is fixed at construction. Vectors have identity
// semantics — the autodiff tape keys gradients by vector identity.
//
// Example:
//
//	x := vec.FromSlice([]float32{0.25, -1.5})
//	fmt.Println(x.Width()) // 2
package vec

import (
	"github.com/Mourtz/slangpy/internal/scalar"
	"github.com/Mourtz/slangpy/internal/vec"
)

// Vector is a fixed-width buffer of independent lanes.
type Vector[T scalar.Float] = vec.Vector[T]

// New creates a zero-filled vector of the given width.
func New[T scalar.Float](width int) *Vector[T] {
	return vec.New[T](width)
}

// FromSlice creates a vector owning a copy of vals.
func FromSlice[T scalar.Float](vals []T) *Vector[T] {
	return vec.FromSlice(vals)
}

// Ones creates a vector with every lane set to one, the usual seed gradient
// for a backward pass.
func Ones[T scalar.Float](width int) *Vector[T] {
	return vec.Ones[T](width)
}
