// SPDX-License-Identifier: MIT

package phasespace

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMass is returned by NewVolume for a negative or non-finite mass.
	ErrInvalidMass = errors.New("phasespace: mass must be finite and non-negative")

	// ErrMalformedLine is returned when an input line is not a particle record.
	ErrMalformedLine = errors.New("phasespace: malformed particle line")
)

const (
	opNewVolume  = "NewVolume"
	opInject     = "Inject"
	opInjectFile = "InjectFile"
)

func phaseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
