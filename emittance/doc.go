// SPDX-License-Identifier: MIT

// Package emittance reduces a Cartesian covariance matrix to the per-plane
// beam quality figures reported by the beamcov CLI.
//
// For each plane q ∈ {x, y, z} with conjugate momentum pq:
//
//	emittance      = √det[[Cov(q,q), Cov(q,pq)], [Cov(pq,q), Cov(pq,pq)]] / mₑ
//	var q, var pq  = diagonal elements
//	1 − r²         = 1 − Cov(q,pq)² / (var q · var pq)
//
// mₑ is the electron rest energy in MeV, so emittances are normalized to the
// electron mass. Degenerate inputs propagate IEEE semantics: a zero variance
// yields NaN for 1 − r², and a slightly negative determinant (round-off on a
// nearly singular plane) yields a NaN emittance.
package emittance
