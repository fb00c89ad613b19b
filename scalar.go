package rocketpy

import (
	"math"
	"math/cmplx"

	"github.com/gonum/floats"
)

const (
	// EqualityTolerance is the absolute tolerance used by Equals and
	// IsOrthogonalTo. There is deliberately no relative term: two large
	// values further apart than this are unequal no matter their ratio.
	EqualityTolerance = 1e-9

	// DiagonalTolerance is the default absolute tolerance of IsDiagonal.
	// Note that it differs from EqualityTolerance.
	DiagonalTolerance = 1e-6
)

// Scalar is the component type of vectors and matrices. All components of a
// given instance share the same scalar kind.
type Scalar interface {
	float64 | complex128
}

// sqrtScalar returns the square root of s in the same scalar kind.
// For float64 a negative operand yields NaN, as with math.Sqrt.
func sqrtScalar[S Scalar](s S) S {
	switch v := any(s).(type) {
	case float64:
		return any(math.Sqrt(v)).(S)
	case complex128:
		return any(cmplx.Sqrt(v)).(S)
	}
	panic("unreachable scalar kind")
}

// absScalar returns the modulus of s as a real number.
func absScalar[S Scalar](s S) float64 {
	switch v := any(s).(type) {
	case float64:
		return math.Abs(v)
	case complex128:
		return cmplx.Abs(v)
	}
	panic("unreachable scalar kind")
}

// scalarsEqualWithinAbs reports whether a and b are within tol of each other
// in absolute terms.
func scalarsEqualWithinAbs[S Scalar](a, b S, tol float64) bool {
	switch v := any(a).(type) {
	case float64:
		return floats.EqualWithinAbs(v, any(b).(float64), tol)
	case complex128:
		return cmplx.Abs(v-any(b).(complex128)) <= tol
	}
	panic("unreachable scalar kind")
}
