// SPDX-License-Identifier: MIT
// Package covariance: sentinel error set.
// This file defines ONLY package-level sentinel errors and the wrapping helpers
// used across the covariance package. Callers and tests match them via
// errors.Is. No exported function panics on user-triggered error conditions;
// panics are reserved for nonsensical Option values (programmer error).

package covariance

import (
	"errors"
	"fmt"
	"strings"
)

// Every message is prefixed with "covariance: ". Operations wrap the sentinel
// with their op tag at the boundary, e.g. "SubDeterminant: covariance: ...".

var (
	// ErrUnknownVariable is returned when a label is not part of the matrix order.
	// The wrapped message enumerates the labels that are accepted.
	ErrUnknownVariable = errors.New("covariance: unknown variable")

	// ErrInsufficientSamples is returned when fewer than two samples are supplied;
	// the sample covariance is undefined for N < 2.
	ErrInsufficientSamples = errors.New("covariance: at least two samples are required")

	// ErrMalformedFile is returned when a flat-text matrix file has an unparsable
	// token, a row of the wrong length, or the wrong number of rows.
	ErrMalformedFile = errors.New("covariance: malformed matrix file")

	// ErrInvalidOrder is returned when an order used for reading or writing is
	// not a permutation of the matrix labels.
	ErrInvalidOrder = errors.New("covariance: order is not a permutation of the matrix variables")

	// ErrEmptySubset is returned by SubDeterminant when no labels are given.
	ErrEmptySubset = errors.New("covariance: empty variable subset")

	// ErrDuplicateVariable is returned by SubDeterminant when a label repeats.
	ErrDuplicateVariable = errors.New("covariance: duplicate variable in subset")

	// ErrUnknownBasis is returned by ParseBasis for unrecognized basis names.
	ErrUnknownBasis = errors.New("covariance: unknown basis")
)

// Operation name constants for unified error wrapping.
const (
	opNew              = "New"
	opNewCylindrical   = "NewCylindrical"
	opElement          = "Element"
	opVariance         = "Variance"
	opCorrelation      = "Correlation"
	opSet              = "Set"
	opSubDeterminant   = "SubDeterminant"
	opEncode           = "Encode"
	opDecode           = "Decode"
	opWriteFile        = "WriteFile"
	opReadFile         = "ReadFile"
	opPrint            = "Print"
	opCheckPermutation = "CheckPermutation"
)

// covErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func covErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// unknownVariable builds the ErrUnknownVariable error for label, naming the
// labels of order that would have been accepted.
func unknownVariable(label string, order []string) error {
	return fmt.Errorf("%w %q: covariance is only specified between these properties: %s",
		ErrUnknownVariable, label, strings.Join(order, ", "))
}

// malformedf reports a malformed file at the given 1-based line.
func malformedf(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedFile, line, fmt.Sprintf(format, args...))
}
