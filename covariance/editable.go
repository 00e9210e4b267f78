// SPDX-License-Identifier: MIT

package covariance

import "gonum.org/v1/gonum/mat"

// Editable is a covariance matrix that is filled in by hand or decoded from a
// flat-text file, for when the raw samples are no longer available.
// It embeds *Matrix, so every query, print and encode method is available.
type Editable struct {
	*Matrix
}

// NewEditable returns an all-zero matrix in the canonical order of b.
func NewEditable(b Basis) *Editable {
	return &Editable{Matrix: newMatrix(b, mat.NewDense(Size, Size, nil))}
}

// Set stores v at (a, b) only; the mirrored element is not touched, so
// callers that want symmetry set both directions. Labels are validated
// against this matrix's own order. Any cached sub-determinant is dropped.
func (e *Editable) Set(a, b string, v float64) error {
	i, err := e.indexOf(a)
	if err != nil {
		return covErrorf(opSet, err)
	}
	j, err := e.indexOf(b)
	if err != nil {
		return covErrorf(opSet, err)
	}
	e.data.Set(i, j, v)
	e.resetCache()

	return nil
}

// SetSymmetric stores v at both (a, b) and (b, a).
func (e *Editable) SetSymmetric(a, b string, v float64) error {
	if err := e.Set(a, b, v); err != nil {
		return err
	}

	return e.Set(b, a, v)
}
