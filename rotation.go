package rocketpy

import "math"

// Rot313Vec rotates the given vector through the 3-1-3 Euler sequence.
func Rot313Vec(θ1, θ2, θ3 float64, v Vec) Vec {
	return R3R1R3(θ1, θ2, θ3).MulVec(v)
}

// R3R1R3 performs a 3-1-3 Euler parameter rotation.
// From Schaub and Junkins.
func R3R1R3(θ1, θ2, θ3 float64) Mat {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return NewMatrix([3][3]float64{
		{cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2},
		{-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2},
		{sθ2 * sθ1, -sθ2 * cθ1, cθ2},
	})
}

// R1 rotation about the 1st axis.
func R1(x float64) Mat {
	s, c := math.Sincos(x)
	return NewMatrix([3][3]float64{{1, 0, 0}, {0, c, s}, {0, -s, c}})
}

// R2 rotation about the 2nd axis.
func R2(x float64) Mat {
	s, c := math.Sincos(x)
	return NewMatrix([3][3]float64{{c, 0, -s}, {0, 1, 0}, {s, 0, c}})
}

// R3 rotation about the 3rd axis.
func R3(x float64) Mat {
	s, c := math.Sincos(x)
	return NewMatrix([3][3]float64{{c, s, 0}, {-s, c, 0}, {0, 0, 1}})
}
