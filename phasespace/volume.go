// SPDX-License-Identifier: MIT

package phasespace

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/beamcov/covariance"
)

// Volume is an ordered collection of particles sharing one rest mass.
// A Volume is not safe for concurrent mutation.
type Volume struct {
	mass      float64
	particles []Particle
	log       *slog.Logger
}

// VolumeOption customizes a Volume.
type VolumeOption func(*Volume)

// WithLogger routes ingestion diagnostics to l. Panics if l is nil.
func WithLogger(l *slog.Logger) VolumeOption {
	if l == nil {
		panic("phasespace: WithLogger(nil)")
	}

	return func(v *Volume) { v.log = l }
}

// NewVolume returns an empty volume whose particles have the given rest mass.
func NewVolume(mass float64, opts ...VolumeOption) (*Volume, error) {
	if mass < 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return nil, phaseErrorf(opNewVolume, ErrInvalidMass)
	}
	v := &Volume{
		mass: mass,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Mass returns the rest mass assigned to every particle of v.
func (v *Volume) Mass() float64 { return v.mass }

// Add appends a particle with momentum mom at position pos.
func (v *Volume) Add(pos, mom Cartesian) {
	v.particles = append(v.particles, Particle{Pos: pos, Mom: mom, Mass: v.mass})
}

// Len returns the number of particles.
func (v *Volume) Len() int { return len(v.particles) }

// Particles returns a copy of the particles in insertion order.
func (v *Volume) Particles() []Particle {
	out := make([]Particle, len(v.particles))
	copy(out, v.particles)

	return out
}

// CovarianceMatrix estimates the Cartesian covariance matrix of v.
func (v *Volume) CovarianceMatrix() (*covariance.Matrix, error) {
	return covariance.New(v.particles)
}

// CylindricalCovarianceMatrix estimates the cylindrical covariance matrix of v.
func (v *Volume) CylindricalCovarianceMatrix() (*covariance.Matrix, error) {
	return covariance.NewCylindrical(v.particles)
}
