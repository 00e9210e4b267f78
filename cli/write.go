// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/beamcov/covariance"
)

// WriteOptions holds flags for the write command.
type WriteOptions struct {
	*RootOptions
	Output string
	Order  []string
}

// NewWriteCommand creates the write command.
func NewWriteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WriteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "write <phase-volume-files...> -o <matrix-file>",
		Short: "Store the covariance matrix in flat upper-triangle text form",
		Long: `Estimate the covariance matrix and store it as text: one line per row,
holding the values on and right of the diagonal. The file carries no labels;
read it back with the same --basis, --sep and --order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "matrix file to write (required)")
	cmd.Flags().String("basis", "cartesian", "coordinate basis (cartesian|cylindrical)")
	cmd.Flags().String("sep", " ", "value separator")
	cmd.Flags().StringSliceVar(&opts.Order, "order", nil, "storage order, a permutation of all seven variables")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runWrite(opts *WriteOptions, paths []string) error {
	b, err := opts.basis()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid basis", err)
	}
	if err = covariance.CheckPermutation(b, opts.Order...); err != nil {
		return WrapExitError(ExitCommandError, "invalid --order", err)
	}
	vol, err := opts.loadVolume(paths)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load phase volume", err)
	}
	m, err := estimate(vol, b)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to estimate covariance", err)
	}

	wopts := append(orderOption(opts.Order), covariance.WithSeparator(opts.cfg.Separator))
	if err = m.WriteFile(opts.Output, wopts...); err != nil {
		return WrapExitError(ExitFailure, "failed to write matrix", err)
	}
	opts.logger.Info("matrix written", "path", opts.Output, "basis", b.String())
	return nil
}
