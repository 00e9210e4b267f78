// SPDX-License-Identifier: MIT

// Package covariance provides the 7×7 phase-space covariance matrix used to
// derive beam emittance and correlation statistics.
//
// What & Why:
//
//	A Matrix holds the sample covariance of the seven phase-space variables
//	(x, y, z, px, py, pz, E) estimated from a set of particle samples. Every
//	query is addressed by variable label rather than by index, so callers
//	never depend on the internal row ordering.
//
// Variants:
//
//   - New           : Cartesian basis, order x, y, z, px, py, pz, E.
//   - NewCylindrical: cylindrical basis, order rho, phi, z, prho, pphi, pz, E.
//     The "phi" column holds ρ·φ (arc length), not the bare angle.
//   - NewEditable   : zero matrix populated element by element or from a
//     flat-text file written by Matrix.Encode / Matrix.WriteFile.
//
// All variants share one type; only construction and the label order differ.
//
// Numerics:
//
//	Covariance estimation (N−1 denominator) and the LU-based log-determinant
//	are delegated to gonum (stat.CovarianceMatrix, mat.LogDet). Sub-determinants
//	are cached per label set and the cache is safe for concurrent readers.
//
// Complexity:
//
//	Construction is O(N) in the number of samples. Element lookups are O(1);
//	sub-determinants are O(k³) for k ≤ 7 labels, once per label set.
package covariance
