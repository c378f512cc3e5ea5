package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tokenform/api/internal/config"
	"tokenform/api/internal/handle"
	"tokenform/api/internal/httpserver"
	"tokenform/api/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "classifier",
	Short: "Token classifier HTTP service",
	Long: `Serves POST/GET /bfhl: POST classifies a "data" array into numbers,
single letters and the highest lowercase letter, GET returns the status payload.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (env BFHL_* overrides it)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := handle.New(cfg.Identity, cfg.Server.MaxBodyBytes, logger.Named("handle"))
	srv := httpserver.New(cfg.Addr(), "ok", h.Register, logger.Named("http"), cfg.Server.ShutdownTimeout)

	logger.Info("classifier starting",
		zap.String("addr", cfg.Addr()),
		zap.String("user_id", cfg.Identity.UserID),
	)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
