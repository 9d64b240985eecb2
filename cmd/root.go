package cmd

import (
	"fmt"
	"os"

	"spreader-detector/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "spreader-detector",
	Short: "Infection spread detector",
	Long: `Spreader Detector reads a roster of people and a chronological log of their
meetings, propagates the infection probability from the known sick person
and tells everyone which medical action they need.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Every failure ends here: it is logged once
// and the process exits with status 1.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps for CLI users.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
