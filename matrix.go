package rocketpy

import (
	"fmt"
	"sync"
)

// Matrix is an immutable 3x3 matrix stored row major. Like Vector it is a
// pure value type: every operation returns a new instance and concurrent
// reads need no synchronization.
type Matrix[S Scalar] struct {
	rows [3][3]S

	cache *matrixCache[S]
}

// Mat is the real matrix used throughout the flight dynamics code.
type Mat = Matrix[float64]

type matrixCache[S Scalar] struct {
	traceOnce sync.Once
	trace     S
	transOnce sync.Once
	trans     Matrix[S]
	detOnce   sync.Once
	det       S
	diagOnce  sync.Once
	diag      bool
	invOnce   sync.Once
	inv       Matrix[S]
	invErr    error
}

// NewMatrix returns the matrix with the given rows.
func NewMatrix[S Scalar](rows [3][3]S) Matrix[S] {
	return Matrix[S]{rows: rows, cache: new(matrixCache[S])}
}

// NewMatrixFromSlice returns the matrix whose components are read from a
// nested slice indexed [row][column], or ErrShape unless the slice is 3x3.
func NewMatrixFromSlice[S Scalar](components [][]S) (Matrix[S], error) {
	if len(components) != 3 {
		return Matrix[S]{}, fmt.Errorf("matrix from %d rows: %w", len(components), ErrShape)
	}
	var rows [3][3]S
	for i, row := range components {
		if len(row) != 3 {
			return Matrix[S]{}, fmt.Errorf("matrix row %d has %d components: %w", i, len(row), ErrShape)
		}
		copy(rows[i][:], row)
	}
	return NewMatrix(rows), nil
}

// Identity returns the identity matrix.
func Identity[S Scalar]() Matrix[S] {
	return NewMatrix([3][3]S{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
}

// ZeroMatrix returns the matrix of all zeros.
func ZeroMatrix[S Scalar]() Matrix[S] {
	return NewMatrix([3][3]S{})
}

// At returns the component at row i, column j.
func (m Matrix[S]) At(i, j int) S {
	return m.rows[i][j]
}

// Named component accessors, first letter row and second letter column.

func (m Matrix[S]) XX() S { return m.rows[0][0] }
func (m Matrix[S]) XY() S { return m.rows[0][1] }
func (m Matrix[S]) XZ() S { return m.rows[0][2] }
func (m Matrix[S]) YX() S { return m.rows[1][0] }
func (m Matrix[S]) YY() S { return m.rows[1][1] }
func (m Matrix[S]) YZ() S { return m.rows[1][2] }
func (m Matrix[S]) ZX() S { return m.rows[2][0] }
func (m Matrix[S]) ZY() S { return m.rows[2][1] }
func (m Matrix[S]) ZZ() S { return m.rows[2][2] }

// Row returns the i-th row as a vector.
func (m Matrix[S]) Row(i int) Vector[S] {
	return NewVector(m.rows[i][0], m.rows[i][1], m.rows[i][2])
}

// Col returns the j-th column as a vector.
func (m Matrix[S]) Col(j int) Vector[S] {
	return NewVector(m.rows[0][j], m.rows[1][j], m.rows[2][j])
}

// Rows returns the components as a row major array.
func (m Matrix[S]) Rows() [3][3]S {
	return m.rows
}

// Neg returns -1 times m.
func (m Matrix[S]) Neg() Matrix[S] {
	var r [3][3]S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = -m.rows[i][j]
		}
	}
	return NewMatrix(r)
}

// Add returns the sum of m and o.
func (m Matrix[S]) Add(o Matrix[S]) Matrix[S] {
	var r [3][3]S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m.rows[i][j] + o.rows[i][j]
		}
	}
	return NewMatrix(r)
}

// Sub returns the difference of m and o.
func (m Matrix[S]) Sub(o Matrix[S]) Matrix[S] {
	var r [3][3]S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m.rows[i][j] - o.rows[i][j]
		}
	}
	return NewMatrix(r)
}

// Scale returns m multiplied component wise by the scalar s.
func (m Matrix[S]) Scale(s S) Matrix[S] {
	var r [3][3]S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = s * m.rows[i][j]
		}
	}
	return NewMatrix(r)
}

// Div returns m divided component wise by the scalar s, or ErrZeroDivisor
// when s is zero.
func (m Matrix[S]) Div(s S) (Matrix[S], error) {
	var zero S
	if s == zero {
		return Matrix[S]{}, ErrZeroDivisor
	}
	var r [3][3]S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m.rows[i][j] / s
		}
	}
	return NewMatrix(r), nil
}

// MulMatrix returns the matrix product m o.
func (m Matrix[S]) MulMatrix(o Matrix[S]) Matrix[S] {
	var r [3][3]S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m.rows[i][0]*o.rows[0][j] + m.rows[i][1]*o.rows[1][j] + m.rows[i][2]*o.rows[2][j]
		}
	}
	return NewMatrix(r)
}

// MulVec returns the matrix vector product m v.
func (m Matrix[S]) MulVec(v Vector[S]) Vector[S] {
	return NewVector(
		m.rows[0][0]*v.X+m.rows[0][1]*v.Y+m.rows[0][2]*v.Z,
		m.rows[1][0]*v.X+m.rows[1][1]*v.Y+m.rows[1][2]*v.Z,
		m.rows[2][0]*v.X+m.rows[2][1]*v.Y+m.rows[2][2]*v.Z,
	)
}

// Pow returns the n-th matrix power of m. Pow(0) is the identity, as is any
// non-positive n.
func (m Matrix[S]) Pow(n int) Matrix[S] {
	result := Identity[S]()
	for i := 0; i < n; i++ {
		result = m.MulMatrix(result)
	}
	return result
}

// Trace returns the sum of the diagonal components.
func (m Matrix[S]) Trace() S {
	if m.cache == nil {
		return m.trace()
	}
	m.cache.traceOnce.Do(func() { m.cache.trace = m.trace() })
	return m.cache.trace
}

func (m Matrix[S]) trace() S {
	return m.rows[0][0] + m.rows[1][1] + m.rows[2][2]
}

// Transpose returns the transpose of m.
func (m Matrix[S]) Transpose() Matrix[S] {
	if m.cache == nil {
		return m.transpose()
	}
	m.cache.transOnce.Do(func() { m.cache.trans = m.transpose() })
	return m.cache.trans
}

func (m Matrix[S]) transpose() Matrix[S] {
	var r [3][3]S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m.rows[j][i]
		}
	}
	return NewMatrix(r)
}

// Det returns the determinant by cofactor expansion along the first row.
// The expansion is spelled out so that the numerical path is identical run
// to run, which the inverse and its consumers rely on.
func (m Matrix[S]) Det() S {
	if m.cache == nil {
		return m.det()
	}
	m.cache.detOnce.Do(func() { m.cache.det = m.det() })
	return m.cache.det
}

func (m Matrix[S]) det() S {
	ixx := m.YY()*m.ZZ() - m.ZY()*m.YZ()
	iyx := m.ZX()*m.YZ() - m.YX()*m.ZZ()
	izx := m.YX()*m.ZY() - m.ZX()*m.YY()
	return m.XX()*ixx + m.XY()*iyx + m.XZ()*izx
}

// IsDiagonal returns whether every off diagonal component is negligible
// within the default tolerance of 1e-6.
func (m Matrix[S]) IsDiagonal() bool {
	if m.cache == nil {
		return m.IsDiagonalWithin(DiagonalTolerance)
	}
	m.cache.diagOnce.Do(func() { m.cache.diag = m.IsDiagonalWithin(DiagonalTolerance) })
	return m.cache.diag
}

// IsDiagonalWithin returns whether every off diagonal component has a
// modulus of at most tol.
func (m Matrix[S]) IsDiagonalWithin(tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			if absScalar(m.rows[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// Inverse returns the inverse of m, or ErrSingular when the determinant is
// zero. Diagonal matrices take a fast path of diagonal reciprocals, which
// avoids the rounding of the general adjugate computation.
func (m Matrix[S]) Inverse() (Matrix[S], error) {
	if m.cache == nil {
		return m.inverse()
	}
	m.cache.invOnce.Do(func() { m.cache.inv, m.cache.invErr = m.inverse() })
	return m.cache.inv, m.cache.invErr
}

func (m Matrix[S]) inverse() (Matrix[S], error) {
	var zero S
	if m.IsDiagonal() {
		if m.XX() == zero || m.YY() == zero || m.ZZ() == zero {
			return Matrix[S]{}, ErrSingular
		}
		return NewMatrix([3][3]S{
			{1 / m.XX(), 0, 0},
			{0, 1 / m.YY(), 0},
			{0, 0, 1 / m.ZZ()},
		}), nil
	}
	ixx := m.YY()*m.ZZ() - m.ZY()*m.YZ()
	iyx := m.ZX()*m.YZ() - m.YX()*m.ZZ()
	izx := m.YX()*m.ZY() - m.ZX()*m.YY()
	ixy := m.ZY()*m.XZ() - m.XY()*m.ZZ()
	iyy := m.XX()*m.ZZ() - m.ZX()*m.XZ()
	izy := m.ZX()*m.XY() - m.XX()*m.ZY()
	ixz := m.XY()*m.YZ() - m.YY()*m.XZ()
	iyz := m.YX()*m.XZ() - m.YZ()*m.XX()
	izz := m.XX()*m.YY() - m.YX()*m.XY()
	det := m.XX()*ixx + m.XY()*iyx + m.XZ()*izx
	if det == zero {
		return Matrix[S]{}, ErrSingular
	}
	return NewMatrix([3][3]S{
		{ixx / det, ixy / det, ixz / det},
		{iyx / det, iyy / det, iyz / det},
		{izx / det, izy / det, izz / det},
	}), nil
}

// ElementWise returns the matrix of op applied to each component. If op
// panics the panic propagates to the caller unchanged.
func (m Matrix[S]) ElementWise(op func(S) S) Matrix[S] {
	var r [3][3]S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = op(m.rows[i][j])
		}
	}
	return NewMatrix(r)
}

// Equals returns whether each of the nine components of m is within an
// absolute 1e-9 of the matching component of o. There is no relative term.
func (m Matrix[S]) Equals(o Matrix[S]) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalarsEqualWithinAbs(m.rows[i][j], o.rows[i][j], EqualityTolerance) {
				return false
			}
		}
	}
	return true
}

func (m Matrix[S]) String() string {
	return fmt.Sprintf("[%v, %v, %v]\n[%v, %v, %v]\n[%v, %v, %v]",
		m.rows[0][0], m.rows[0][1], m.rows[0][2],
		m.rows[1][0], m.rows[1][1], m.rows[1][2],
		m.rows[2][0], m.rows[2][1], m.rows[2][2])
}

// Transformation returns the rotation matrix of the quaternion q, which must
// be of unit norm: no normalization nor check is performed here.
func Transformation(q Quaternion) Mat {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return NewMatrix([3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	})
}
