// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/beamcov/covariance"
	"github.com/katalvlaran/beamcov/emittance"
)

// ReadOptions holds flags for the read command.
type ReadOptions struct {
	*RootOptions
	Order  []string
	Report bool
	Header bool
}

// NewReadCommand creates the read command.
func NewReadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "read <matrix-file>",
		Short: "Load a stored covariance matrix and print it",
		Long: `Load a matrix written by "beamcov write" and print it in the chosen format.

With --report the CSV report line is printed instead. The particle count is
not stored with the matrix, so the count column is 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(opts, args[0], cmd)
		},
	}

	cmd.Flags().String("basis", "cartesian", "coordinate basis (cartesian|cylindrical)")
	cmd.Flags().String("sep", " ", "value separator used when the file was written")
	cmd.Flags().StringSliceVar(&opts.Order, "order", nil, "storage order used when the file was written")
	cmd.Flags().String("format", "covariance", "output format (covariance|correlation|mixed)")
	cmd.Flags().BoolVar(&opts.Report, "report", false, "print the CSV report line instead of the matrix")
	cmd.Flags().BoolVar(&opts.Header, "header", false, "with --report, print the column names first")

	return cmd
}

func runRead(opts *ReadOptions, path string, cmd *cobra.Command) error {
	b, err := opts.basis()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid basis", err)
	}
	if err = covariance.CheckPermutation(b, opts.Order...); err != nil {
		return WrapExitError(ExitCommandError, "invalid --order", err)
	}

	e := covariance.NewEditable(b)
	ropts := append(orderOption(opts.Order), covariance.WithSeparator(opts.cfg.Separator))
	if err = e.ReadFile(path, ropts...); err != nil {
		return WrapExitError(ExitFailure, "failed to read matrix", err)
	}
	opts.logger.Debug("matrix read", "path", path, "basis", b.String())

	var buf bytes.Buffer
	if opts.Report {
		r, rerr := emittance.Compute(e.Matrix, 0)
		if rerr != nil {
			return WrapExitError(ExitFailure, "failed to compute report", rerr)
		}
		err = r.WriteCSV(&buf, opts.Header)
	} else {
		err = printMatrix(&buf, e.Matrix, opts.cfg.Format, nil)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "failed to print matrix", err)
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
