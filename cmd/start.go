package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"isoserve/core/config"
	"isoserve/core/loader"
	"isoserve/core/logger"
	"isoserve/core/server"
	"isoserve/core/storage"
	"isoserve/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the file server",
	Long:  `Binds 0.0.0.0 on the configured port and serves the document root until interrupted.`,
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Register the document root source
	mgr := loader.NewManager()
	if cfg.Storage.Enabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		mgr.Register(static.NewBucketFeature(store, cfg.Storage, cfg.Server.Index, logg))
	} else {
		mgr.Register(static.NewFeature(cfg.Server, logg))
	}

	// 4. Build the server and load features
	srv, err := server.New(cfg.Server, logg, mgr)
	if err != nil {
		return err
	}
	logg.Debug("Features loaded", zap.Strings("features", mgr.Enabled()))

	// 5. Bind before announcing; a busy port is fatal
	ln, err := srv.Bind()
	if err != nil {
		return err
	}
	srv.Banner(cmd.OutOrStdout())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	// 6. Graceful Shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return err
	case <-sig:
	}

	logg.Info("Shutting down server...")
	return srv.Shutdown()
}

func init() {
	RootCmd.AddCommand(startCmd)
}
