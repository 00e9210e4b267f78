// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/beamcov/emittance"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Header bool
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report <phase-volume-files...>",
		Short: "Print emittance, variance and correlation per plane as CSV",
		Long: `Report the variance, emittance and correlation of the input distributions.

For each plane (x, y, z) the CSV line holds the normalized emittance, the
position and momentum variances and 1 - r^2, followed by the number of
electrons represented (macroparticles times electrons per macroparticle).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, args, cmd)
		},
	}

	cmd.Flags().IntP("electrons-per-macroparticle", "m", 100, "number of electrons per macroparticle")
	cmd.Flags().BoolVar(&opts.Header, "header", false, "print the column names on a separate line")

	return cmd
}

func runReport(opts *ReportOptions, paths []string, cmd *cobra.Command) error {
	vol, err := opts.loadVolume(paths)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load phase volume", err)
	}
	m, err := vol.CovarianceMatrix()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to estimate covariance", err)
	}
	r, err := emittance.Compute(m, vol.Len()*opts.cfg.ElectronsPerMacroparticle)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to compute report", err)
	}

	var buf bytes.Buffer
	if err = r.WriteCSV(&buf, opts.Header); err != nil {
		return WrapExitError(ExitFailure, "failed to format report", err)
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
