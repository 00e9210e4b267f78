// SPDX-License-Identifier: MIT
// Package covariance: label validators.
//
// Purpose:
//   - Single source of truth for label → index resolution.
//   - Validation always binds to the receiver's own order, never to a
//     package-level vocabulary, so cylindrical and Cartesian matrices reject
//     each other's labels.
//   - Return plain (non op-tagged) errors; call sites wrap with covErrorf.

package covariance

import "fmt"

// indexOf resolves label against the matrix order.
func (m *Matrix) indexOf(label string) (int, error) {
	i, ok := m.index[label]
	if !ok {
		return 0, unknownVariable(label, m.order)
	}

	return i, nil
}

// displayIndices resolves a display order (subset or permutation, repeats
// allowed). A nil order resolves to the canonical order.
func (m *Matrix) displayIndices(order []string) ([]string, []int, error) {
	if order == nil {
		order = m.order
	}
	idx := make([]int, len(order))
	for k, label := range order {
		i, err := m.indexOf(label)
		if err != nil {
			return nil, nil, err
		}
		idx[k] = i
	}

	return order, idx, nil
}

// permutation resolves a storage order, which must list every label exactly
// once. A nil order resolves to the identity permutation.
func (m *Matrix) permutation(order []string) ([]int, error) {
	if order == nil {
		order = m.order
	}
	if len(order) != len(m.order) {
		return nil, fmt.Errorf("%w: got %d labels, want %d", ErrInvalidOrder, len(order), len(m.order))
	}
	seen := make(map[int]struct{}, len(order))
	idx := make([]int, len(order))
	for k, label := range order {
		i, err := m.indexOf(label)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[i]; dup {
			return nil, fmt.Errorf("%w: %q listed twice", ErrInvalidOrder, label)
		}
		seen[i] = struct{}{}
		idx[k] = i
	}

	return idx, nil
}

// subsetIndices resolves a sub-determinant label set: non-empty, distinct and
// known. The caller's order is preserved.
func (m *Matrix) subsetIndices(labels []string) ([]int, error) {
	if len(labels) == 0 {
		return nil, ErrEmptySubset
	}
	seen := make(map[string]struct{}, len(labels))
	idx := make([]int, len(labels))
	for k, label := range labels {
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, label)
		}
		seen[label] = struct{}{}
		i, err := m.indexOf(label)
		if err != nil {
			return nil, err
		}
		idx[k] = i
	}

	return idx, nil
}
