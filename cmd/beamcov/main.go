// SPDX-License-Identifier: MIT

// Command beamcov reports phase-space covariance, emittance and correlation
// of macroparticle distributions.
package main

import (
	"os"

	"github.com/katalvlaran/beamcov/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
