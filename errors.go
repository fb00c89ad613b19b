package rocketpy

import "errors"

var (
	// ErrShape is returned when a constructor receives a collection which is
	// not of length 3 (vectors) or not 3x3 (matrices).
	ErrShape = errors.New("rocketpy: operand is not of shape 3")

	// ErrZeroDivisor is returned on scalar division by zero.
	ErrZeroDivisor = errors.New("rocketpy: division by zero scalar")

	// ErrZeroMagnitude is returned when normalizing a zero vector.
	ErrZeroMagnitude = errors.New("rocketpy: zero magnitude vector has no unit vector")

	// ErrSingular is returned when inverting a singular matrix.
	ErrSingular = errors.New("rocketpy: matrix is singular")
)
