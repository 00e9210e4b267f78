// SPDX-License-Identifier: MIT
// Package covariance: construction from particle samples.
//
// Purpose:
//   - Tabulate one observation row per sample (N×7) in the basis order.
//   - Estimate the sample covariance of the columns, (Xcᵀ Xc)/(N−1), with
//     gonum's two-pass stat.CovarianceMatrix.
//
// Determinism:
//   - Rows are tabulated in slice order; the estimator is deterministic.

package covariance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sample is the read-only view of one particle needed for the Cartesian basis.
// Momentum and energy must use consistent units across all samples.
type Sample interface {
	Position() (x, y, z float64)
	Momentum() (px, py, pz float64)
	Energy() float64
}

// CylindricalSample extends Sample with the cylindrical representation.
// CylindricalMomentum resolves the momentum in the local (ρ̂, φ̂, ẑ) frame
// at the particle position.
type CylindricalSample interface {
	Sample
	CylindricalPosition() (rho, phi, z float64)
	CylindricalMomentum() (prho, pphi, pz float64)
}

// New estimates the Cartesian covariance matrix (x, y, z, px, py, pz, E)
// of samples.
//
// Implementation:
//   - Stage 1: Require N ≥ 2.
//   - Stage 2: Tabulate the N×7 observation grid.
//   - Stage 3: Estimate the unbiased (N−1) covariance of the columns.
//
// Errors:
//   - ErrInsufficientSamples when len(samples) < 2.
//
// Complexity:
//   - Time O(N·7²), Space O(N·7).
func New[S Sample](samples []S) (*Matrix, error) {
	// Stage 1 (Validate): the covariance is undefined below two samples.
	if len(samples) < 2 {
		return nil, covErrorf(opNew, fmt.Errorf("%w: got %d", ErrInsufficientSamples, len(samples)))
	}

	// Stage 2 (Tabulate): one row per sample in Cartesian order.
	obs := mat.NewDense(len(samples), Size, nil)
	row := make([]float64, Size)
	for i, s := range samples {
		row[0], row[1], row[2] = s.Position()
		row[3], row[4], row[5] = s.Momentum()
		row[6] = s.Energy()
		obs.SetRow(i, row)
	}

	// Stage 3 (Estimate).
	return estimate(Cartesian, obs), nil
}

// NewCylindrical estimates the cylindrical covariance matrix
// (rho, phi, z, prho, pphi, pz, E) of samples.
//
// The "phi" column is tabulated as ρ·φ, the arc length at the particle
// radius, not the bare angle.
//
// Errors:
//   - ErrInsufficientSamples when len(samples) < 2.
func NewCylindrical[S CylindricalSample](samples []S) (*Matrix, error) {
	if len(samples) < 2 {
		return nil, covErrorf(opNewCylindrical, fmt.Errorf("%w: got %d", ErrInsufficientSamples, len(samples)))
	}

	obs := mat.NewDense(len(samples), Size, nil)
	row := make([]float64, Size)
	var rho, phi float64
	for i, s := range samples {
		rho, phi, row[2] = s.CylindricalPosition()
		row[0] = rho
		row[1] = rho * phi
		row[3], row[4], row[5] = s.CylindricalMomentum()
		row[6] = s.Energy()
		obs.SetRow(i, row)
	}

	return estimate(Cylindrical, obs), nil
}

// estimate computes the column covariance of obs and binds it to basis b.
func estimate(b Basis, obs *mat.Dense) *Matrix {
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, obs, nil)

	return newMatrix(b, mat.DenseCopyOf(&cov))
}
