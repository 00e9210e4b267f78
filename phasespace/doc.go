// SPDX-License-Identifier: MIT

// Package phasespace holds macroparticles in six-dimensional phase space and
// feeds them to the covariance package.
//
// A Particle carries a Cartesian position and momentum plus its rest mass
// (MeV, with c = 1). It satisfies both covariance.Sample and
// covariance.CylindricalSample, so a slice of particles can be handed
// directly to covariance.New or covariance.NewCylindrical.
//
// A Volume is an ordered particle container with plain-text ingestion:
//
//	vol, err := phasespace.NewVolume(emittance.ElectronMassMeV)
//	if err != nil { ... }
//	if err := vol.InjectFile("beam.txt"); err != nil { ... }
//	m, err := vol.CovarianceMatrix()
//
// Input files list one particle per line as six numbers, x y z px py pz,
// separated by whitespace or commas. Blank lines and lines starting with '#'
// are skipped. Additional trailing columns are ignored.
package phasespace
