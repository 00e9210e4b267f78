// SPDX-License-Identifier: MIT

package phasespace

import "math"

// Cartesian is a 3-vector in the lab frame.
type Cartesian struct {
	X, Y, Z float64
}

// Cylindrical is a 3-vector in cylindrical components. For a position, Phi is
// the azimuth in radians; for a vector resolved at a position, Phi is the
// azimuthal component.
type Cylindrical struct {
	Rho, Phi, Z float64
}

// Norm returns |v|.
func (v Cartesian) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// ToCylindrical converts a position: Rho = √(x²+y²), Phi = atan2(y, x).
// The origin maps to Phi = 0.
func (v Cartesian) ToCylindrical() Cylindrical {
	return Cylindrical{
		Rho: math.Hypot(v.X, v.Y),
		Phi: math.Atan2(v.Y, v.X),
		Z:   v.Z,
	}
}

// ToCylindricalAt resolves v in the local (ρ̂, φ̂, ẑ) frame at pos:
//
//	Rho = vx·cosφ + vy·sinφ
//	Phi = −vx·sinφ + vy·cosφ
//
// On the axis (ρ = 0) the frame is taken at φ = 0.
func (v Cartesian) ToCylindricalAt(pos Cartesian) Cylindrical {
	phi := 0.0
	if pos.X != 0 || pos.Y != 0 {
		phi = math.Atan2(pos.Y, pos.X)
	}
	sin, cos := math.Sincos(phi)

	return Cylindrical{
		Rho: v.X*cos + v.Y*sin,
		Phi: -v.X*sin + v.Y*cos,
		Z:   v.Z,
	}
}

// ToCartesian converts a position back to the lab frame.
func (c Cylindrical) ToCartesian() Cartesian {
	sin, cos := math.Sincos(c.Phi)

	return Cartesian{X: c.Rho * cos, Y: c.Rho * sin, Z: c.Z}
}
