// Copyright 2025 The SlangPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the public numeric contract of the framework.
//
// It defines the floating-point constraint every module is generic over and
// the transcendental primitives the transforms are written against:
// arithmetic is the language's own, the rest is Exp, Tanh, a combined
// Sincos, Min/Max and a π provider. The Dual type is the differential pair
// used across the backward-pass boundary.
//
// Example:
//
//	s, c := scalar.Sincos(scalar.Pi[float32]() * x)
package scalar

import (
	"github.com/Mourtz/slangpy/internal/scalar"
)

// Float is a constraint for supported lane element types.
type Float = scalar.Float

// Dual pairs a primal value with its gradient/tangent.
type Dual[T Float] = scalar.Dual[T]

// Exp returns e**x.
func Exp[T Float](x T) T { return scalar.Exp(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T { return scalar.Tanh(x) }

// Sincos returns sin(x) and cos(x) from one combined evaluation.
func Sincos[T Float](x T) (sin, cos T) { return scalar.Sincos(x) }

// Pi returns the constant π at the precision of T.
func Pi[T Float]() T { return scalar.Pi[T]() }

// Min returns the smaller of a and b.
func Min[T Float](a, b T) T { return scalar.Min(a, b) }

// Max returns the larger of a and b.
func Max[T Float](a, b T) T { return scalar.Max(a, b) }

// Abs returns the absolute value of x.
func Abs[T Float](x T) T { return scalar.Abs(x) }
