package rocketpy

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// Converters to and from gonum mat64, which the trajectory integration and
// estimation layers work in. They copy: the returned values share no storage
// with their input.

// DenseFromMat returns m as a newly allocated dense matrix.
func DenseFromMat(m Mat) *mat64.Dense {
	r := m.Rows()
	return mat64.NewDense(3, 3, []float64{
		r[0][0], r[0][1], r[0][2],
		r[1][0], r[1][1], r[1][2],
		r[2][0], r[2][1], r[2][2],
	})
}

// MatFromDense returns the matrix stored in d, or ErrShape unless d is 3x3.
func MatFromDense(d *mat64.Dense) (Mat, error) {
	rows, cols := d.Dims()
	if rows != 3 || cols != 3 {
		return Mat{}, fmt.Errorf("matrix from %dx%d dense: %w", rows, cols, ErrShape)
	}
	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = d.At(i, j)
		}
	}
	return NewMatrix(r), nil
}

// Mat64FromVec returns v as a newly allocated mat64 column vector.
func Mat64FromVec(v Vec) *mat64.Vector {
	return mat64.NewVector(3, []float64{v.X, v.Y, v.Z})
}

// VecFromMat64 returns the vector stored in m, or ErrShape unless m is of
// length 3.
func VecFromMat64(m *mat64.Vector) (Vec, error) {
	if m.Len() != 3 {
		return Vec{}, fmt.Errorf("vector from %d components: %w", m.Len(), ErrShape)
	}
	return NewVector(m.At(0, 0), m.At(1, 0), m.At(2, 0)), nil
}
