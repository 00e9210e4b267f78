// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "beamcov", cmd.Use)
	assert.Contains(t, cmd.Long, "covariance matrix")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"report", "matrix", "write", "read"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)

	levelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, levelFlag)
	assert.Equal(t, "info", levelFlag.DefValue)
}

func TestReportCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	reportCmd, _, err := cmd.Find([]string{"report"})
	require.NoError(t, err)

	mFlag := reportCmd.Flags().Lookup("electrons-per-macroparticle")
	require.NotNil(t, mFlag)
	assert.Equal(t, "m", mFlag.Shorthand)
	assert.Equal(t, "100", mFlag.DefValue)

	headerFlag := reportCmd.Flags().Lookup("header")
	require.NotNil(t, headerFlag)
	assert.Equal(t, "false", headerFlag.DefValue)
}

func TestWriteCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	writeCmd, _, err := cmd.Find([]string{"write"})
	require.NoError(t, err)

	outputFlag := writeCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	sepFlag := writeCmd.Flags().Lookup("sep")
	require.NotNil(t, sepFlag)
	assert.Equal(t, " ", sepFlag.DefValue)
}

func TestReadCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	readCmd, _, err := cmd.Find([]string{"read"})
	require.NoError(t, err)

	for _, name := range []string{"basis", "sep", "order", "format", "report", "header"} {
		assert.NotNil(t, readCmd.Flags().Lookup(name), "flag %s", name)
	}
}
