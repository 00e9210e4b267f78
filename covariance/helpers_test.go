// SPDX-License-Identifier: MIT
// Package covariance_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic sample fixtures and matrix builders.
//   - Keep all data finite and well-formed.

package covariance_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamcov/covariance"
)

// sample is a minimal covariance.Sample / covariance.CylindricalSample.
type sample struct {
	x, y, z, px, py, pz, e float64
}

func (s sample) Position() (float64, float64, float64) { return s.x, s.y, s.z }
func (s sample) Momentum() (float64, float64, float64) { return s.px, s.py, s.pz }
func (s sample) Energy() float64                       { return s.e }

// CylindricalPosition reads x as rho and y as phi so tests can drive the
// cylindrical columns directly.
func (s sample) CylindricalPosition() (float64, float64, float64) { return s.x, s.y, s.z }

// CylindricalMomentum reads px as prho and py as pphi.
func (s sample) CylindricalMomentum() (float64, float64, float64) { return s.px, s.py, s.pz }

// randomSamples draws n correlated samples from a fixed seed.
func randomSamples(n int, seed int64) []sample {
	rng := rand.New(rand.NewSource(seed))
	out := make([]sample, n)
	for i := range out {
		x := rng.NormFloat64() * 1e-3
		y := rng.NormFloat64() * 2e-3
		z := rng.NormFloat64() * 5e-3
		px := 0.3*x*1e3 + rng.NormFloat64()*0.1
		py := -0.2*y*1e3 + rng.NormFloat64()*0.2
		pz := 10 + rng.NormFloat64()
		e := math.Sqrt(px*px + py*py + pz*pz + 0.511*0.511)
		out[i] = sample{x: x, y: y, z: z, px: px, py: py, pz: pz, e: e}
	}

	return out
}

// fixtureCells is the upper triangle of a well-conditioned reference matrix.
// Unlisted cells are zero.
var fixtureCells = []struct {
	a, b string
	v    float64
}{
	{"x", "x", 4e-06},
	{"x", "y", 3.1379999999999996e-07},
	{"x", "px", 0.0008123000000000001},
	{"y", "y", 9e-06},
	{"y", "py", -0.00051732},
	{"z", "z", 0.0001},
	{"z", "pz", 0.004297535340168828},
	{"z", "E", 0.004083300000000001},
	{"px", "px", 0.25},
	{"px", "py", -0.02754},
	{"py", "py", 0.16000000000000003},
	{"pz", "pz", 2.5000000000000004},
	{"pz", "E", 2.0289647809289346},
	{"E", "E", 1.6900000000000002},
}

// fixtureMatrix builds the reference matrix as a symmetric Editable.
func fixtureMatrix(t *testing.T) *covariance.Editable {
	t.Helper()
	e := covariance.NewEditable(covariance.Cartesian)
	for _, c := range fixtureCells {
		require.NoError(t, e.SetSymmetric(c.a, c.b, c.v))
	}

	return e
}

// allPairs lists every ordered label pair of order.
func allPairs(order []string) [][2]string {
	out := make([][2]string, 0, len(order)*len(order))
	for _, a := range order {
		for _, b := range order {
			out = append(out, [2]string{a, b})
		}
	}

	return out
}
