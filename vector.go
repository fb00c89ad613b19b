package rocketpy

import (
	"fmt"
	"sync"
)

// Vector is an immutable R3 vector. Components are either all float64 or all
// complex128. Every operation returns a new value; instances are safe for
// unrestricted concurrent use.
type Vector[S Scalar] struct {
	X, Y, Z S

	cache *vectorCache[S]
}

// Vec is the real vector used throughout the flight dynamics code.
type Vec = Vector[float64]

// vectorCache memoizes the derived values of a Vector. Writes happen at most
// once per slot and are idempotent since every derivation is pure.
type vectorCache[S Scalar] struct {
	magOnce  sync.Once
	mag      S
	unitOnce sync.Once
	unit     Vector[S]
	unitErr  error
	skewOnce sync.Once
	skew     Matrix[S]
}

// NewVector returns the vector (x, y, z).
func NewVector[S Scalar](x, y, z S) Vector[S] {
	return Vector[S]{X: x, Y: y, Z: z, cache: new(vectorCache[S])}
}

// NewVectorFromSlice returns the vector whose components are the three
// elements of the provided slice, or ErrShape if the slice is not of
// length 3.
func NewVectorFromSlice[S Scalar](components []S) (Vector[S], error) {
	if len(components) != 3 {
		return Vector[S]{}, fmt.Errorf("vector from %d components: %w", len(components), ErrShape)
	}
	return NewVector(components[0], components[1], components[2]), nil
}

// ZeroVector returns the vector (0, 0, 0).
func ZeroVector[S Scalar]() Vector[S] {
	return NewVector[S](0, 0, 0)
}

// I returns the first standard basis vector (1, 0, 0).
func I[S Scalar]() Vector[S] {
	return NewVector[S](1, 0, 0)
}

// J returns the second standard basis vector (0, 1, 0).
func J[S Scalar]() Vector[S] {
	return NewVector[S](0, 1, 0)
}

// K returns the third standard basis vector (0, 0, 1).
func K[S Scalar]() Vector[S] {
	return NewVector[S](0, 0, 1)
}

// Slice returns the components as a newly allocated slice.
func (v Vector[S]) Slice() []S {
	return []S{v.X, v.Y, v.Z}
}

// At returns the i-th component, i in {0, 1, 2}.
func (v Vector[S]) At(i int) S {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("vector index %d out of range", i))
	}
}

// Magnitude returns the norm of v. The components are squared directly, not
// through their modulus, so for complex components this is the algebraic
// square root of x²+y²+z² rather than the Hermitian norm. Downstream
// attitude math relies on this exact form.
func (v Vector[S]) Magnitude() S {
	if v.cache == nil {
		return v.magnitude()
	}
	v.cache.magOnce.Do(func() { v.cache.mag = v.magnitude() })
	return v.cache.mag
}

func (v Vector[S]) magnitude() S {
	return sqrtScalar(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Neg returns -1 times v.
func (v Vector[S]) Neg() Vector[S] {
	return NewVector(-v.X, -v.Y, -v.Z)
}

// Add returns the sum of v and o.
func (v Vector[S]) Add(o Vector[S]) Vector[S] {
	return NewVector(v.X+o.X, v.Y+o.Y, v.Z+o.Z)
}

// Sub returns the difference of v and o.
func (v Vector[S]) Sub(o Vector[S]) Vector[S] {
	return NewVector(v.X-o.X, v.Y-o.Y, v.Z-o.Z)
}

// Scale returns v multiplied component wise by the scalar s.
func (v Vector[S]) Scale(s S) Vector[S] {
	return NewVector(s*v.X, s*v.Y, s*v.Z)
}

// Div returns v divided component wise by the scalar s, or ErrZeroDivisor
// when s is zero.
func (v Vector[S]) Div(s S) (Vector[S], error) {
	var zero S
	if s == zero {
		return Vector[S]{}, ErrZeroDivisor
	}
	return NewVector(v.X/s, v.Y/s, v.Z/s), nil
}

// Dot returns the dot product of v and o.
func (v Vector[S]) Dot(o Vector[S]) S {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o. It is anticommutative, so operand
// order matters.
func (v Vector[S]) Cross(o Vector[S]) Vector[S] {
	return NewVector(
		v.Y*o.Z-v.Z*o.Y,
		-v.X*o.Z+v.Z*o.X,
		v.X*o.Y-v.Y*o.X,
	)
}

// Unit returns the vector of magnitude one with the same direction as v, or
// ErrZeroMagnitude when v is the zero vector.
func (v Vector[S]) Unit() (Vector[S], error) {
	if v.cache == nil {
		return v.unit()
	}
	v.cache.unitOnce.Do(func() { v.cache.unit, v.cache.unitErr = v.unit() })
	return v.cache.unit, v.cache.unitErr
}

func (v Vector[S]) unit() (Vector[S], error) {
	m := v.Magnitude()
	var zero S
	if m == zero {
		return Vector[S]{}, ErrZeroMagnitude
	}
	return NewVector(v.X/m, v.Y/m, v.Z/m), nil
}

// CrossMatrix returns the skew symmetric matrix M of v, such that
// M.MulVec(o) equals v.Cross(o) for any vector o. It converts cross products
// into matrix products for the rigid body equations of motion.
func (v Vector[S]) CrossMatrix() Matrix[S] {
	if v.cache == nil {
		return v.crossMatrix()
	}
	v.cache.skewOnce.Do(func() { v.cache.skew = v.crossMatrix() })
	return v.cache.skew
}

func (v Vector[S]) crossMatrix() Matrix[S] {
	return NewMatrix([3][3]S{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	})
}

// IsParallelTo returns whether v × o is the zero vector within the equality
// tolerance.
func (v Vector[S]) IsParallelTo(o Vector[S]) bool {
	return v.Cross(o).Equals(ZeroVector[S]())
}

// IsOrthogonalTo returns whether the dot product of v and o is zero within
// an absolute tolerance of 1e-9.
func (v Vector[S]) IsOrthogonalTo(o Vector[S]) bool {
	var zero S
	return scalarsEqualWithinAbs(v.Dot(o), zero, EqualityTolerance)
}

// Equals returns whether each component of v is within an absolute 1e-9 of
// the matching component of o. There is no relative term.
func (v Vector[S]) Equals(o Vector[S]) bool {
	return scalarsEqualWithinAbs(v.X, o.X, EqualityTolerance) &&
		scalarsEqualWithinAbs(v.Y, o.Y, EqualityTolerance) &&
		scalarsEqualWithinAbs(v.Z, o.Z, EqualityTolerance)
}

// ElementWise returns the vector of op applied to each component. If op
// panics the panic propagates to the caller unchanged.
func (v Vector[S]) ElementWise(op func(S) S) Vector[S] {
	return NewVector(op(v.X), op(v.Y), op(v.Z))
}

func (v Vector[S]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
