// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/beamcov/covariance"
	"github.com/katalvlaran/beamcov/emittance"
	"github.com/katalvlaran/beamcov/phasespace"
)

// loadVolume ingests every file of paths, in order, into one electron volume.
func (o *RootOptions) loadVolume(paths []string) (*phasespace.Volume, error) {
	vol, err := phasespace.NewVolume(emittance.ElectronMassMeV, phasespace.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err = vol.InjectFile(p); err != nil {
			return nil, err
		}
	}
	o.logger.Info("phase volume loaded", "files", len(paths), "particles", vol.Len())
	return vol, nil
}

// basis parses the configured basis name.
func (o *RootOptions) basis() (covariance.Basis, error) {
	return covariance.ParseBasis(o.cfg.Basis)
}

// estimate builds the covariance matrix of vol in basis b.
func estimate(vol *phasespace.Volume, b covariance.Basis) (*covariance.Matrix, error) {
	if b == covariance.Cylindrical {
		return vol.CylindricalCovarianceMatrix()
	}
	return vol.CovarianceMatrix()
}

// orderOption returns WithOrder(order...) or nothing for an empty order.
func orderOption(order []string) []covariance.Option {
	if len(order) == 0 {
		return nil
	}
	return []covariance.Option{covariance.WithOrder(order...)}
}

// printMatrix renders m in the named format.
func printMatrix(w io.Writer, m *covariance.Matrix, format string, order []string) error {
	opts := orderOption(order)
	switch format {
	case "covariance":
		return m.PrintCovariance(w, opts...)
	case "correlation":
		return m.PrintCorrelation(w, opts...)
	case "mixed":
		return m.PrintMixed(w, opts...)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
