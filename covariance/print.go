// SPDX-License-Identifier: MIT
// Package covariance: upper-triangular text renderings.
//
// Purpose:
//   - PrintCovariance : raw covariances, %12.2e, preceded by a label header.
//   - PrintCorrelation: Pearson correlations, %12.3f (diagonal is 1.000).
//   - PrintMixed      : correlations off the diagonal (%16.3f) and raw
//     variances on it (%16.4e). The diagonal is the raw variance, not 1.
//
// Layout:
//   - Row r, column c of the display order; cells with c < r are replaced by
//     blanks of the cell width so that columns stay aligned.
//   - The whole rendering is built before the first write, so a bad label
//     never produces partial output.

package covariance

import (
	"fmt"
	"io"
	"strings"
)

// Cell widths of the three renderings.
const (
	covarianceWidth  = 12
	correlationWidth = 12
	mixedWidth       = 16
)

// PrintCovariance writes the upper triangle of the covariance matrix in the
// display order (WithOrder; default Order()), preceded by the labels.
func (m *Matrix) PrintCovariance(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	labels, idx, err := m.displayIndices(o.order)
	if err != nil {
		return covErrorf(opPrint, err)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(labels, " "))
	sb.WriteByte('\n')
	renderUpper(&sb, len(idx), covarianceWidth, func(r, c int) string {
		return fmt.Sprintf("%12.2e", m.data.At(idx[r], idx[c]))
	})

	return flush(w, &sb)
}

// PrintCorrelation writes the upper triangle of the correlation matrix in the
// display order (WithOrder; default Order()).
func (m *Matrix) PrintCorrelation(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	_, idx, err := m.displayIndices(o.order)
	if err != nil {
		return covErrorf(opPrint, err)
	}

	var sb strings.Builder
	renderUpper(&sb, len(idx), correlationWidth, func(r, c int) string {
		return fmt.Sprintf("%12.3f", m.correlationAt(idx[r], idx[c]))
	})

	return flush(w, &sb)
}

// PrintMixed writes correlations above the diagonal and variances on it.
func (m *Matrix) PrintMixed(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	_, idx, err := m.displayIndices(o.order)
	if err != nil {
		return covErrorf(opPrint, err)
	}

	var sb strings.Builder
	renderUpper(&sb, len(idx), mixedWidth, func(r, c int) string {
		if r == c {
			return fmt.Sprintf("%16.4e", m.data.At(idx[r], idx[c]))
		}

		return fmt.Sprintf("%16.3f", m.correlationAt(idx[r], idx[c]))
	})

	return flush(w, &sb)
}

// renderUpper writes n rows of n cells, blanking the strict lower triangle.
func renderUpper(sb *strings.Builder, n, width int, cell func(r, c int) string) {
	blank := strings.Repeat(" ", width)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c < r {
				sb.WriteString(blank)
				continue
			}
			sb.WriteString(cell(r, c))
		}
		sb.WriteByte('\n')
	}
}

// flush writes the rendered text to w.
func flush(w io.Writer, sb *strings.Builder) error {
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return covErrorf(opPrint, err)
	}

	return nil
}
