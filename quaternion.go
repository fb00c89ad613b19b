package rocketpy

import "math"

// Quaternion is a real quaternion w + xi + yj + zk used to represent
// attitude. Like Vector and Matrix it is an immutable value type. Operations
// which expect a unit quaternion say so and do not normalize on behalf of
// the caller.
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion returns the no-rotation quaternion (1, 0, 0, 0).
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle returns the unit quaternion of a rotation of angle radians
// about the provided axis, or ErrZeroMagnitude when the axis is the zero
// vector.
func FromAxisAngle(axis Vec, angle float64) (Quaternion, error) {
	u, err := axis.Unit()
	if err != nil {
		return Quaternion{}, err
	}
	s, c := math.Sincos(angle / 2)
	return Quaternion{W: c, X: s * u.X, Y: s * u.Y, Z: s * u.Z}, nil
}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns q scaled to unit norm, or ErrZeroMagnitude when q is the
// zero quaternion.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, ErrZeroMagnitude
	}
	return Quaternion{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}, nil
}

// Conjugate returns the conjugate of q. For a unit quaternion this is also
// its inverse.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Mul returns the Hamilton product q r. Composition reads right to left: the
// rotation of r happens first.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Rotate returns v rotated by the unit quaternion q.
func (q Quaternion) Rotate(v Vec) Vec {
	return Transformation(q).MulVec(v)
}

// Rates returns the quaternion kinematic rates q̇ = ½ q ⊗ (0, ω) for the
// body angular velocity ω. Integrating these rates propagates attitude.
func (q Quaternion) Rates(ω Vec) Quaternion {
	r := q.Mul(Quaternion{X: ω.X, Y: ω.Y, Z: ω.Z})
	return Quaternion{W: r.W / 2, X: r.X / 2, Y: r.Y / 2, Z: r.Z / 2}
}
