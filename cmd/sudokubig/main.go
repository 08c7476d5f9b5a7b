// Command sudokubig drives package board's core operations from the
// shell: load a declarative puzzle file, then solve, count, or compute
// true candidates, logging structured diagnostics instead of printing
// ad hoc text (grounded on operator-cli's root-command wiring and
// Nomad's hclog-everywhere convention).
package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var logLevel string

func main() {
	rootCmd := &cobra.Command{
		Use:   "sudokubig",
		Short: "sudokubig",
		Long:  "sudokubig drives the BIG propagation core over a declarative puzzle file.",
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newCandidatesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "sudokubig",
		Level: hclog.LevelFromString(logLevel),
	})
}
