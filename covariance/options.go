// SPDX-License-Identifier: MIT

// Package covariance: functional configuration for printing and flat-text I/O.
// This file defines:
//   - Option (functional options over an internal options struct),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - WithOrder means "display order" for the Print* methods, where a subset of
//     the labels is allowed, and "storage order" for Encode/Decode, where it must
//     be a full permutation of the matrix labels.
//   - A file written with a custom order must be read back with the same order;
//     the flat-text format carries no labels.
package covariance

// DefaultSeparator separates values on a line of a flat-text matrix file.
const DefaultSeparator = " "

const (
	panicSeparatorEmpty = "covariance: WithSeparator: separator must be non-empty"
	panicOrderEmpty     = "covariance: WithOrder: at least one label is required"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

// options is the resolved configuration of a single call.
type options struct {
	sep   string   // value separator for Encode/Decode
	order []string // nil ⇒ the matrix's canonical order
}

// WithSeparator sets the value separator used by Encode and Decode.
// Panics if sep is empty.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *options) { o.sep = sep }
}

// WithOrder overrides the label order used to print, encode or decode.
// Panics if no labels are given. Labels are validated by the consuming call.
func WithOrder(labels ...string) Option {
	if len(labels) == 0 {
		panic(panicOrderEmpty)
	}
	order := make([]string, len(labels))
	copy(order, labels)

	return func(o *options) { o.order = order }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{sep: DefaultSeparator}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
