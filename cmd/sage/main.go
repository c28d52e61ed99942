// Command sage is the thin CLI wrapper around the classify core: it loads
// one spectrum and a template library, runs Analyze, and writes a report.
package main

import (
	"fmt"
	"os"

	"github.com/astrosnid/snid/internal/xerrors"
)

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	os.Exit(exitCode(err))
}

// exitCode maps an *xerrors.Error's Kind to the documented process exit
// code: 0 success (including "unknown" classification), 2 user/input
// error, 3 cancellation, 1 internal error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	switch xerrors.KindOf(err) {
	case xerrors.BadInput, xerrors.EmptySpectrum, xerrors.NoEligibleTemplates:
		fmt.Fprintln(os.Stderr, err)
		return 2
	case xerrors.Cancelled:
		fmt.Fprintln(os.Stderr, err)
		return 3
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}
