// Package scalar defines the numeric contract shared by every module in the
// framework: a floating-point constraint and the small set of transcendental
// primitives the transforms are written against.
//
// All helpers widen to float64, call the math package, and narrow back.
// Overflow and invalid operations propagate as IEEE infinities/NaNs; nothing
// in this package returns an error.
package scalar

import "math"

// Float is a constraint for supported lane element types.
type Float interface {
	~float32 | ~float64
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T {
	return T(math.Tanh(float64(x)))
}

// Sincos returns sin(x) and cos(x) from one combined evaluation.
func Sincos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Pi returns the constant π at the precision of T.
func Pi[T Float]() T {
	return T(math.Pi)
}

// Min returns the smaller of a and b.
func Min[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
