// SPDX-License-Identifier: MIT

// Package beamcov estimates and reports the phase-space covariance of
// charged-particle beams: the 7×7 matrix of (x, y, z, px, py, pz, E),
// per-plane emittances and correlations.
//
// 🚀 What is beamcov?
//
//	A small numerical toolkit and CLI that brings together:
//		• Covariance matrices in Cartesian or cylindrical (ρ, ρ·φ, z, pρ, pφ, pz, E) form
//		• Cached sub-determinants (phase-space areas and volumes)
//		• Editable matrices restored from a flat upper-triangle text format
//		• Covariance, correlation and mixed renderings
//		• Emittance reports as CSV
//
// Under the hood, everything is organized in four packages:
//
//	covariance/  Matrix, Editable, sub-determinants, printing, flat-text I/O
//	phasespace/  vectors, particles and the phase volume with file ingestion
//	emittance/   per-plane emittance, variances and 1 − r², CSV output
//	cli/         the beamcov command (report, matrix, write, read)
//
// Quick example:
//
//	vol, _ := phasespace.NewVolume(emittance.ElectronMassMeV)
//	_ = vol.InjectFile("beam.txt")
//	m, _ := vol.CovarianceMatrix()
//	area, _ := m.SubDeterminant("x", "px") // squared x-plane emittance
//
//	go install github.com/katalvlaran/beamcov/cmd/beamcov@latest
package beamcov
