package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/spf13/cobra"

	"ResumeBot/config"
	"ResumeBot/handler"
	"ResumeBot/repo"
	"ResumeBot/wizard"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	Long: `Run the bot with long polling until interrupted.

Environment:
  TELEGRAM_TOKEN                      bot token (required)
  LOG_LEVEL                           debug, info, warn, error (default info)
  LOG_FORMAT                          console or json (default console)
  FIREBASE_SERVICE_ACCOUNT_KEY_PATH   enables the résumé archive, with
  FIREBASE_DATABASE_URL               the Realtime Database URL`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := []handler.Option{handler.WithLogger(logger)}
	fc, err := repo.InitializeFirebase(ctx, cfg.Firebase)
	if err != nil {
		return err
	}
	if fc != nil {
		opts = append(opts, handler.WithArchive(fc))
		logger.Info().Msg("resume archive enabled")
	}

	h := handler.NewResumeBotHandler(wizard.New(), opts...)
	b, err := bot.New(cfg.Token, bot.WithDefaultHandler(h.Handler))
	if err != nil {
		return fmt.Errorf("error creating bot: %w", err)
	}

	logger.Info().Msg("bot started")
	b.Start(ctx)
	logger.Info().Msg("bot stopped")
	return nil
}
