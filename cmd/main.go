package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"openform/internal/app"
	"openform/internal/config"
	"openform/internal/logging"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "openform",
	Short: "Normalize free-text survey answers",
	Long: `openform turns free-text answers into canonical token sequences.

Tokens are lowercased and stripped of punctuation, then optionally
spell-corrected against a trained frequency model, filtered for stopwords,
tagged by numeric category and flagged when they are not words.

Corpora, word lists and the custom dictionary are read from the YAML file
given by --config and the environment (CORPORA, WORD_LIST, REDIS_ADDR, ...).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// loadApp builds the model the same way the server does.
func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, logger)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
