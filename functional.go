package rocketpy

// VectorFunc is a vector whose components are scalar functions of time,
// typically thrust or torque profiles. Evaluating it at an epoch yields a
// plain Vector. The static component types make a non invokable component
// impossible by construction.
type VectorFunc[S Scalar] struct {
	X, Y, Z func(t float64) S
}

// At evaluates each component at t and returns the resulting vector.
func (f VectorFunc[S]) At(t float64) Vector[S] {
	return NewVector(f.X(t), f.Y(t), f.Z(t))
}

// ConstantVectorFunc returns the vector function which evaluates to v at any
// time.
func ConstantVectorFunc[S Scalar](v Vector[S]) VectorFunc[S] {
	return VectorFunc[S]{
		X: func(float64) S { return v.X },
		Y: func(float64) S { return v.Y },
		Z: func(float64) S { return v.Z },
	}
}

// MatrixFunc is a matrix whose components are scalar functions of time, e.g.
// the inertia tensor of a burning motor.
type MatrixFunc[S Scalar] struct {
	Rows [3][3]func(t float64) S
}

// At evaluates each component at t and returns the resulting matrix.
func (f MatrixFunc[S]) At(t float64) Matrix[S] {
	var r [3][3]S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = f.Rows[i][j](t)
		}
	}
	return NewMatrix(r)
}

// ConstantMatrixFunc returns the matrix function which evaluates to m at any
// time.
func ConstantMatrixFunc[S Scalar](m Matrix[S]) MatrixFunc[S] {
	var rows [3][3]func(float64) S
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c := m.At(i, j)
			rows[i][j] = func(float64) S { return c }
		}
	}
	return MatrixFunc[S]{Rows: rows}
}
