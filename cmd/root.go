package cmd

import (
	"fmt"
	"os"

	"isoserve/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Running it starts the server, same as the start subcommand.
var RootCmd = &cobra.Command{
	Use:   "isoserve",
	Short: "Cross-origin isolated static file server",
	Long: `isoserve serves the current directory over HTTP and adds the
Cross-Origin-Opener-Policy and Cross-Origin-Embedder-Policy headers to every
response, so pages can use SharedArrayBuffer and other isolated-only APIs.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStart,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps instead of epoch
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
