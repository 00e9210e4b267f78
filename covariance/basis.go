// SPDX-License-Identifier: MIT

package covariance

import (
	"fmt"
	"strings"
)

// Size is the side length of every covariance matrix in this package.
const Size = 7

// Variable labels of the Cartesian basis.
const (
	LabelX      = "x"
	LabelY      = "y"
	LabelZ      = "z"
	LabelPX     = "px"
	LabelPY     = "py"
	LabelPZ     = "pz"
	LabelEnergy = "E"
)

// Variable labels that only exist in the cylindrical basis. z, pz and E are
// shared with the Cartesian basis.
const (
	LabelRho  = "rho"
	LabelPhi  = "phi"
	LabelPRho = "prho"
	LabelPPhi = "pphi"
)

// Basis selects the coordinate system, and with it the label order, of a Matrix.
type Basis int

const (
	// Cartesian orders the variables x, y, z, px, py, pz, E.
	Cartesian Basis = iota
	// Cylindrical orders the variables rho, phi, z, prho, pphi, pz, E.
	Cylindrical
)

var (
	cartesianOrder   = [Size]string{LabelX, LabelY, LabelZ, LabelPX, LabelPY, LabelPZ, LabelEnergy}
	cylindricalOrder = [Size]string{LabelRho, LabelPhi, LabelZ, LabelPRho, LabelPPhi, LabelPZ, LabelEnergy}
)

// Order returns a fresh copy of the canonical label order of b.
func (b Basis) Order() []string {
	var src [Size]string
	switch b {
	case Cylindrical:
		src = cylindricalOrder
	default:
		src = cartesianOrder
	}
	out := make([]string, Size)
	copy(out, src[:])

	return out
}

// String implements fmt.Stringer.
func (b Basis) String() string {
	switch b {
	case Cartesian:
		return "cartesian"
	case Cylindrical:
		return "cylindrical"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// ParseBasis maps "cartesian" or "cylindrical" (case-insensitive) to a Basis.
func ParseBasis(s string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cartesian":
		return Cartesian, nil
	case "cylindrical":
		return Cylindrical, nil
	default:
		return Cartesian, fmt.Errorf("%w %q: must be cartesian or cylindrical", ErrUnknownBasis, s)
	}
}

// CheckPermutation reports whether labels list every variable of b exactly
// once, the requirement on a storage order for Encode and Decode. An empty
// labels slice stands for the canonical order and is accepted.
func CheckPermutation(b Basis, labels ...string) error {
	if len(labels) == 0 {
		return nil
	}
	if _, err := newMatrix(b, nil).permutation(labels); err != nil {
		return covErrorf(opCheckPermutation, err)
	}

	return nil
}
