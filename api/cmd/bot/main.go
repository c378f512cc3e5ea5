package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tokenform/api/internal/config"
	"tokenform/api/internal/form"
	"tokenform/api/internal/httpserver"
	"tokenform/api/internal/logging"
	"tokenform/api/internal/telegram"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "bot",
	Short:        "Telegram front end for the token classifier",
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
	token, err := cfg.RequireBotToken()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	bot.Debug = false

	r := &telegram.Router{
		Bot:    bot,
		Client: form.NewClient(cfg.Client.BaseURL, cfg.Client.Timeout),
		Log:    logger.Named("telegram"),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	handleUpdate := func(upd tgbotapi.Update) { r.HandleUpdate(ctx, upd) }

	// --- Choose mode: Webhook vs Polling ---
	var register func(*http.ServeMux)
	webhookURL := strings.TrimSpace(cfg.Telegram.WebhookURL)
	if webhookURL != "" {
		path := telegram.WebhookPath(token)
		public := strings.TrimRight(webhookURL, "/") + path

		wh, err := tgbotapi.NewWebhook(public)
		if err != nil {
			return fmt.Errorf("webhook: %w", err)
		}
		wh.DropPendingUpdates = true
		if _, err := bot.Request(wh); err != nil {
			return fmt.Errorf("set webhook: %w", err)
		}
		register = func(mux *http.ServeMux) {
			mux.Handle(path, telegram.WebhookHandler(logger, handleUpdate))
		}
		logger.Info("webhook mode", zap.String("path", path))
	}

	srv := httpserver.New(cfg.BotAddr(), "ok", register, logger.Named("http"), cfg.Server.ShutdownTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	if webhookURL == "" {
		logger.Info("polling mode", zap.String("classifier", cfg.Client.BaseURL))
		g.Go(func() error { return telegram.RunPolling(gctx, bot, logger, handleUpdate) })
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
