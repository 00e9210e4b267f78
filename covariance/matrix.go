// SPDX-License-Identifier: MIT

package covariance

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a symmetric 7×7 covariance matrix addressed by variable label.
// Matrices returned by New and NewCylindrical are immutable; an Editable
// wraps a Matrix and adds element mutation and decoding.
//
// All methods are safe for concurrent use as long as no Editable mutation
// runs at the same time.
type Matrix struct {
	basis Basis          // coordinate system, fixes order
	order []string       // index → label, len == Size
	index map[string]int // label → index
	data  *mat.Dense     // Size×Size, row/column i ↔ order[i]

	mu     sync.Mutex         // guards subDet
	subDet map[string]float64 // sorted, comma-joined label set → determinant
}

// newMatrix wires a Size×Size grid to the canonical order of b.
func newMatrix(b Basis, data *mat.Dense) *Matrix {
	order := b.Order()
	index := make(map[string]int, len(order))
	for i, label := range order {
		index[label] = i
	}

	return &Matrix{
		basis:  b,
		order:  order,
		index:  index,
		data:   data,
		subDet: make(map[string]float64),
	}
}

// Basis reports the coordinate system of the matrix.
func (m *Matrix) Basis() Basis { return m.basis }

// Order returns a copy of the label order; row/column i belongs to Order()[i].
func (m *Matrix) Order() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)

	return out
}

// Dims returns the number of rows and columns (always Size, Size).
func (m *Matrix) Dims() (r, c int) { return m.data.Dims() }

// Len returns the number of stored elements (Size²).
func (m *Matrix) Len() int {
	r, c := m.data.Dims()

	return r * c
}

// Dense returns a copy of the underlying grid in Order().
func (m *Matrix) Dense() *mat.Dense { return mat.DenseCopyOf(m.data) }

// Element returns Cov(a, b). Both labels must belong to Order().
func (m *Matrix) Element(a, b string) (float64, error) {
	i, err := m.indexOf(a)
	if err != nil {
		return 0, covErrorf(opElement, err)
	}
	j, err := m.indexOf(b)
	if err != nil {
		return 0, covErrorf(opElement, err)
	}

	return m.data.At(i, j), nil
}

// Variance returns Cov(a, a).
func (m *Matrix) Variance(a string) (float64, error) {
	i, err := m.indexOf(a)
	if err != nil {
		return 0, covErrorf(opVariance, err)
	}

	return m.data.At(i, i), nil
}

// Correlation returns the Pearson correlation Cov(a,b) / (σa·σb).
// The result is NaN when either variance is zero.
func (m *Matrix) Correlation(a, b string) (float64, error) {
	i, err := m.indexOf(a)
	if err != nil {
		return 0, covErrorf(opCorrelation, err)
	}
	j, err := m.indexOf(b)
	if err != nil {
		return 0, covErrorf(opCorrelation, err)
	}

	return m.correlationAt(i, j), nil
}

// correlationAt computes the Pearson correlation of indices i and j.
func (m *Matrix) correlationAt(i, j int) float64 {
	std1 := math.Sqrt(m.data.At(i, i))
	std2 := math.Sqrt(m.data.At(j, j))

	return m.data.At(i, j) / (std1 * std2)
}
