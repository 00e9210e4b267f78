// SPDX-License-Identifier: MIT

package emittance

import "errors"

// ErrWrongBasis is returned by Compute for a matrix that is not Cartesian.
var ErrWrongBasis = errors.New("emittance: covariance matrix must use the cartesian basis")
