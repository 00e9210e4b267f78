// SPDX-License-Identifier: MIT
// Package covariance: flat-text serialization.
//
// Format:
//   - One line per row i = 0..6 of the storage order.
//   - Line i holds the values of columns j ≥ i (upper triangle including the
//     diagonal), formatted with strconv 'g' shortest representation and
//     joined by the separator (DefaultSeparator unless WithSeparator).
//   - No header and no labels: the reader must supply the storage order that
//     was used for writing.

package covariance

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode writes the upper triangle of m to w in the flat-text format.
// WithOrder selects the storage order and must be a permutation of Order().
func (m *Matrix) Encode(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	idx, err := m.permutation(o.order)
	if err != nil {
		return covErrorf(opEncode, err)
	}

	var sb strings.Builder
	n := len(idx)
	for r := 0; r < n; r++ {
		for c := r; c < n; c++ {
			if c > r {
				sb.WriteString(o.sep)
			}
			sb.WriteString(strconv.FormatFloat(m.data.At(idx[r], idx[c]), 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	if _, err = io.WriteString(w, sb.String()); err != nil {
		return covErrorf(opEncode, err)
	}

	return nil
}

// WriteFile encodes m into the file at path, creating or truncating it.
// The matrix is encoded before the file is opened, so an invalid order
// leaves an existing file untouched.
func (m *Matrix) WriteFile(path string, opts ...Option) error {
	var buf bytes.Buffer
	if err := m.Encode(&buf, opts...); err != nil {
		return covErrorf(opWriteFile, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return covErrorf(opWriteFile, err)
	}

	return nil
}

// Decode reads a flat-text matrix from r into e, mirroring every stored value
// into both (i, j) and (j, i). WithOrder must match the order used by Encode.
//
// Implementation:
//   - Stage 1: Resolve the storage order.
//   - Stage 2: Parse every row; row i must hold exactly Size−i values.
//   - Stage 3: Only after the whole file parsed, write the values and drop
//     the sub-determinant cache.
//
// Behavior highlights:
//   - Blank lines and a trailing '\r' are ignored. Whitespace around each
//     value is ignored, but the line is split as is: a leading or trailing
//     separator yields an extra (empty) value and fails, whatever the
//     separator.
//   - On error e is left unchanged.
//
// Errors:
//   - ErrInvalidOrder, ErrUnknownVariable for a bad WithOrder.
//   - ErrMalformedFile for unparsable tokens, wrong row lengths or row count.
func (e *Editable) Decode(r io.Reader, opts ...Option) error {
	// Stage 1 (Validate order).
	o := gatherOptions(opts...)
	idx, err := e.permutation(o.order)
	if err != nil {
		return covErrorf(opDecode, err)
	}

	// Stage 2 (Parse).
	n := len(idx)
	rows := make([][]float64, 0, n)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		row := len(rows)
		if row >= n {
			return covErrorf(opDecode, malformedf(line, "unexpected row %d, matrix has %d rows", row+1, n))
		}
		tokens := strings.Split(text, o.sep)
		if len(tokens) != n-row {
			return covErrorf(opDecode, malformedf(line, "row %d has %d values, want %d", row+1, len(tokens), n-row))
		}
		values := make([]float64, len(tokens))
		for k, tok := range tokens {
			v, perr := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if perr != nil {
				return covErrorf(opDecode, malformedf(line, "value %d: %v", k+1, perr))
			}
			values[k] = v
		}
		rows = append(rows, values)
	}
	if err = sc.Err(); err != nil {
		return covErrorf(opDecode, err)
	}
	if len(rows) != n {
		return covErrorf(opDecode, malformedf(line, "got %d rows, want %d", len(rows), n))
	}

	// Stage 3 (Apply).
	for i, values := range rows {
		for k, v := range values {
			j := i + k
			e.data.Set(idx[i], idx[j], v)
			e.data.Set(idx[j], idx[i], v)
		}
	}
	e.resetCache()

	return nil
}

// ReadFile decodes the flat-text matrix file at path into e.
func (e *Editable) ReadFile(path string, opts ...Option) error {
	f, err := os.Open(path)
	if err != nil {
		return covErrorf(opReadFile, err)
	}
	defer f.Close()

	if err = e.Decode(f, opts...); err != nil {
		return fmt.Errorf("%s: %s: %w", opReadFile, path, err)
	}

	return nil
}
