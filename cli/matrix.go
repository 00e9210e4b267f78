// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"

	"github.com/spf13/cobra"
)

// MatrixOptions holds flags for the matrix command.
type MatrixOptions struct {
	*RootOptions
	Order []string
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatrixOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "matrix <phase-volume-files...>",
		Short: "Print the covariance matrix of the input distributions",
		Long: `Print the upper triangle of the 7x7 covariance matrix.

Formats:
  covariance   raw covariances, preceded by the variable names
  correlation  Pearson correlations
  mixed        correlations off the diagonal, variances on it

--order selects and arranges the printed variables, e.g. --order x,px,y,py.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(opts, args, cmd)
		},
	}

	cmd.Flags().String("basis", "cartesian", "coordinate basis (cartesian|cylindrical)")
	cmd.Flags().String("format", "covariance", "output format (covariance|correlation|mixed)")
	cmd.Flags().StringSliceVar(&opts.Order, "order", nil, "variables to print, comma separated")

	return cmd
}

func runMatrix(opts *MatrixOptions, paths []string, cmd *cobra.Command) error {
	b, err := opts.basis()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid basis", err)
	}
	vol, err := opts.loadVolume(paths)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load phase volume", err)
	}
	m, err := estimate(vol, b)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to estimate covariance", err)
	}

	var buf bytes.Buffer
	if err = printMatrix(&buf, m, opts.cfg.Format, opts.Order); err != nil {
		return WrapExitError(ExitFailure, "failed to print matrix", err)
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
