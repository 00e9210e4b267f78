// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags and the state resolved before a command runs.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool

	cfg    Config
	logger *slog.Logger
}

// NewRootCommand creates the root command for the beamcov CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "beamcov",
		Short: "Phase-space covariance, emittance and correlation reports",
		Long: `beamcov reads macroparticle phase-space files (x y z px py pz per line),
estimates the 7x7 covariance matrix of (x, y, z, px, py, pz, E) and reports
emittances, variances and correlations. Matrices can be stored in a flat
upper-triangle text format and read back later.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (forces debug logging)")

	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))
	cmd.AddCommand(NewWriteCommand(opts))
	cmd.AddCommand(NewReadCommand(opts))

	return cmd
}

// resolve loads and validates the configuration and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	if err = applyFlags(cmd, &cfg); err != nil {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err = cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	o.cfg = cfg
	o.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	o.logger.Debug("configuration resolved",
		"basis", cfg.Basis,
		"format", cfg.Format,
		"electrons_per_macroparticle", cfg.ElectronsPerMacroparticle,
		"config_file", o.ConfigPath)

	return nil
}

// applyFlags copies explicitly set flags over cfg. Flags a command does not
// define are never Changed and so are ignored.
func applyFlags(cmd *cobra.Command, cfg *Config) error {
	fs := cmd.Flags()
	var err error
	if fs.Changed("log-level") {
		cfg.LogLevel, err = fs.GetString("log-level")
	}
	if err == nil && fs.Changed("electrons-per-macroparticle") {
		cfg.ElectronsPerMacroparticle, err = fs.GetInt("electrons-per-macroparticle")
	}
	for _, s := range []struct {
		flag string
		dst  *string
	}{
		{"basis", &cfg.Basis},
		{"format", &cfg.Format},
		{"sep", &cfg.Separator},
	} {
		if err != nil {
			break
		}
		if fs.Changed(s.flag) {
			*s.dst, err = fs.GetString(s.flag)
		}
	}
	return err
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}
