package cmd

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ResumeBot/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var logLevel string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "resumebot",
	Short: "Telegram bot that interviews users and hands back a PDF résumé",
	Long: `resumebot runs a Telegram conversation that collects personal data,
education, work history, languages and courses, then renders the answers
into a PDF résumé and sends it back to the user.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides "+config.EnvLogLevel)
}

// newLogger builds the process logger. An explicit --log-level wins over the environment.
func newLogger(w io.Writer, level zerolog.Level, jsonOutput bool) (zerolog.Logger, error) {
	if logLevel != "" {
		lvl, err := config.ParseLevel(logLevel)
		if err != nil {
			return zerolog.Nop(), err
		}
		level = lvl
	}
	if !jsonOutput {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
