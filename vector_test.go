package rocketpy

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestVectorConstruction(t *testing.T) {
	v := NewVector(1.0, 2.0, 3.0)
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Fatal("components not stored exactly")
	}
	w, err := NewVectorFromSlice([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if w.X != 1 || w.Y != 2 || w.Z != 3 {
		t.Fatal("slice components not stored exactly")
	}
	if _, err = NewVectorFromSlice([]float64{1, 2}); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
	if _, err = NewVectorFromSlice([]float64{1, 2, 3, 4}); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
	if v.At(0) != 1 || v.At(1) != 2 || v.At(2) != 3 {
		t.Fatal("At does not read back the components")
	}
}

func TestVectorBasis(t *testing.T) {
	if !I[float64]().Cross(J[float64]()).Equals(K[float64]()) {
		t.Fatal("i x j != k")
	}
	if !J[float64]().Cross(K[float64]()).Equals(I[float64]()) {
		t.Fatal("j x k != i")
	}
	if !K[float64]().Cross(I[float64]()).Equals(J[float64]()) {
		t.Fatal("k x i != j")
	}
	z := ZeroVector[float64]()
	if z.X != 0 || z.Y != 0 || z.Z != 0 {
		t.Fatal("zero vector is not zero")
	}
}

func TestVectorArithmetic(t *testing.T) {
	v := NewVector(1.0, 2.0, 3.0)
	if !v.Add(v).Equals(NewVector(2.0, 4.0, 6.0)) {
		t.Fatal("add fail")
	}
	if !v.Sub(v).Equals(ZeroVector[float64]()) {
		t.Fatal("subtract fail")
	}
	if v.Dot(v) != 14 {
		t.Fatal("dot fail")
	}
	if !v.Neg().Equals(NewVector(-1.0, -2.0, -3.0)) {
		t.Fatal("negate fail")
	}
	if !v.Scale(2).Equals(NewVector(2.0, 4.0, 6.0)) {
		t.Fatal("scale fail")
	}
	half, err := v.Div(2)
	if err != nil {
		t.Fatal(err)
	}
	if !half.Equals(NewVector(0.5, 1.0, 1.5)) {
		t.Fatal("divide fail")
	}
	if _, err = v.Div(0); !errors.Is(err, ErrZeroDivisor) {
		t.Fatalf("expected ErrZeroDivisor, got %v", err)
	}
}

func TestVectorCross(t *testing.T) {
	u := NewVector(2.0, 3.0, 4.0)
	v := NewVector(5.0, 6.0, 7.0)
	if !u.Cross(v).Equals(NewVector(-3.0, 6.0, -3.0)) {
		t.Fatal("cross fail")
	}
	// Anticommutativity.
	if !u.Cross(v).Equals(v.Cross(u).Neg()) {
		t.Fatal("u x v != -(v x u)")
	}
	// Commutativity of the dot product.
	if u.Dot(v) != v.Dot(u) {
		t.Fatal("u.v != v.u")
	}
	// From Vallado.
	got := NewVector(6524.834, 6862.875, 6448.296).Cross(NewVector(4.901327, 5.533756, -1.976341))
	exp := NewVector(-4.924667792015100e4, 4.450050424118601e4, 0.246964476137900e4)
	if !floats.EqualWithinAbs(got.X, exp.X, 1e-6) || !floats.EqualWithinAbs(got.Y, exp.Y, 1e-6) || !floats.EqualWithinAbs(got.Z, exp.Z, 1e-6) {
		t.Fatal("cross fail (Vallado)")
	}
}

func TestVectorMagnitude(t *testing.T) {
	v := NewVector(3.0, 4.0, 0.0)
	if v.Magnitude() != 5 {
		t.Fatal("magnitude fail")
	}
	if ZeroVector[float64]().Magnitude() != 0 {
		t.Fatal("zero vector magnitude must be zero")
	}
	for _, w := range []Vec{NewVector(1.0, -2.0, 3.0), NewVector(-7.5, 0.25, 12.0), I[float64]()} {
		if w.Magnitude() < 0 {
			t.Fatal("magnitude must be non negative")
		}
		if w.Magnitude() == 0 {
			t.Fatal("magnitude of a non zero vector must be positive")
		}
	}
}

func TestVectorUnit(t *testing.T) {
	v := NewVector(1.0, -2.0, 3.0)
	u, err := v.Unit()
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(u.Magnitude(), 1, 1e-9) {
		t.Fatal("unit vector magnitude is not 1")
	}
	if !u.IsParallelTo(v) {
		t.Fatal("unit vector is not parallel to its vector")
	}
	if _, err = ZeroVector[float64]().Unit(); !errors.Is(err, ErrZeroMagnitude) {
		t.Fatalf("expected ErrZeroMagnitude, got %v", err)
	}
}

func TestVectorCrossMatrix(t *testing.T) {
	u := NewVector(2.0, -1.0, 0.5)
	for _, v := range []Vec{NewVector(5.0, 6.0, 7.0), I[float64](), NewVector(-1.0, 0.0, 4.0)} {
		if !u.CrossMatrix().MulVec(v).Equals(u.Cross(v)) {
			t.Fatalf("cross matrix of %s applied to %s does not match the cross product", u, v)
		}
	}
	// The cross matrix is skew symmetric.
	m := u.CrossMatrix()
	if !m.Transpose().Equals(m.Neg()) {
		t.Fatal("cross matrix is not skew symmetric")
	}
}

func TestVectorPredicates(t *testing.T) {
	v := NewVector(1.0, 2.0, 3.0)
	if !v.IsParallelTo(v.Scale(-4)) {
		t.Fatal("v must be parallel to a scaling of itself")
	}
	if v.IsParallelTo(NewVector(1.0, 2.0, 4.0)) {
		t.Fatal("parallel fail")
	}
	if !I[float64]().IsOrthogonalTo(J[float64]()) {
		t.Fatal("i must be orthogonal to j")
	}
	if I[float64]().IsOrthogonalTo(NewVector(1.0, 1.0, 0.0)) {
		t.Fatal("orthogonal fail")
	}
	// The orthogonality tolerance is absolute.
	if !I[float64]().IsOrthogonalTo(NewVector(0.9e-9, 1.0, 0.0)) {
		t.Fatal("dot below 1e-9 must count as orthogonal")
	}
	if I[float64]().IsOrthogonalTo(NewVector(1.1e-9, 1.0, 0.0)) {
		t.Fatal("dot above 1e-9 must not count as orthogonal")
	}
}

func TestVectorEquals(t *testing.T) {
	v := NewVector(1.0, 2.0, 3.0)
	if !v.Equals(NewVector(1.0, 2.0, 3.0+0.9e-9)) {
		t.Fatal("vectors within 1e-9 must be equal")
	}
	if v.Equals(NewVector(1.0, 2.0, 3.0+1.1e-9)) {
		t.Fatal("vectors beyond 1e-9 must not be equal")
	}
	// No relative term: large vectors relatively close are still unequal.
	if NewVector(1e12, 0.0, 0.0).Equals(NewVector(1e12+1e-6, 0.0, 0.0)) {
		t.Fatal("equality tolerance must be absolute")
	}
}

func TestVectorElementWise(t *testing.T) {
	v := NewVector(1.0, 4.0, 9.0)
	if !v.ElementWise(math.Sqrt).Equals(NewVector(1.0, 2.0, 3.0)) {
		t.Fatal("element wise fail")
	}
	// A panicking operation propagates unchanged.
	defer func() {
		if recover() == nil {
			t.Fatal("expected the element wise panic to propagate")
		}
	}()
	v.ElementWise(func(x float64) float64 { panic("boom") })
}

func TestVectorComplex(t *testing.T) {
	// The magnitude squares the components directly rather than through
	// their modulus, so a purely imaginary vector has imaginary magnitude.
	// This matches the algebraic square the attitude math expects, not the
	// Hermitian norm.
	v := NewVector(1i, 0i, 0i)
	if m := v.Magnitude(); m != 1i {
		t.Fatalf("expected direct square magnitude 1i, got %v", m)
	}
	w := NewVector(3+0i, 4i, 0i)
	// 9 + (4i)² = 9 - 16 = -7, so the magnitude is sqrt(-7)i.
	if m := w.Magnitude(); !scalarsEqualWithinAbs(m, complex(0, math.Sqrt(7)), 1e-9) {
		t.Fatalf("expected sqrt(-7) as magnitude, got %v", m)
	}
	if w.Dot(w) != -7 {
		t.Fatal("complex dot must square directly")
	}
}

func TestVectorCaching(t *testing.T) {
	v := NewVector(1.0, 2.0, 3.0)
	if v.Magnitude() != v.Magnitude() {
		t.Fatal("magnitude must be deterministic")
	}
	u1, _ := v.Unit()
	u2, _ := v.Unit()
	if !u1.Equals(u2) {
		t.Fatal("unit vector must be deterministic")
	}
	// A literal without the internal cache still computes correctly.
	lit := Vec{X: 3, Y: 4, Z: 0}
	if lit.Magnitude() != 5 {
		t.Fatal("cacheless literal magnitude fail")
	}
	if !lit.CrossMatrix().MulVec(I[float64]()).Equals(lit.Cross(I[float64]())) {
		t.Fatal("cacheless literal cross matrix fail")
	}
}
