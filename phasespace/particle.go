// SPDX-License-Identifier: MIT

package phasespace

import (
	"math"

	"github.com/katalvlaran/beamcov/covariance"
)

// Particle is a macroparticle: position, momentum (MeV/c) and rest mass (MeV).
type Particle struct {
	Pos  Cartesian
	Mom  Cartesian
	Mass float64
}

var (
	_ covariance.Sample            = Particle{}
	_ covariance.CylindricalSample = Particle{}
)

// Position returns (x, y, z).
func (p Particle) Position() (x, y, z float64) { return p.Pos.X, p.Pos.Y, p.Pos.Z }

// Momentum returns (px, py, pz).
func (p Particle) Momentum() (px, py, pz float64) { return p.Mom.X, p.Mom.Y, p.Mom.Z }

// Energy returns the total energy √(|p|² + m²).
func (p Particle) Energy() float64 {
	return math.Sqrt(p.Mom.X*p.Mom.X + p.Mom.Y*p.Mom.Y + p.Mom.Z*p.Mom.Z + p.Mass*p.Mass)
}

// CylindricalPosition returns (ρ, φ, z) of the position.
func (p Particle) CylindricalPosition() (rho, phi, z float64) {
	c := p.Pos.ToCylindrical()

	return c.Rho, c.Phi, c.Z
}

// CylindricalMomentum returns the momentum resolved at the particle position.
func (p Particle) CylindricalMomentum() (prho, pphi, pz float64) {
	c := p.Mom.ToCylindricalAt(p.Pos)

	return c.Rho, c.Phi, c.Z
}
