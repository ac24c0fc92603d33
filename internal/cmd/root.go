package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"autocorrect/internal/config"
	"autocorrect/internal/corrector"
	"autocorrect/internal/server"
)

var (
	configPath     string
	dictionaryPath string
	noRedis        bool
)

var rootCmd = &cobra.Command{
	Use:   "autocorrect",
	Short: "dictionary-backed spelling correction",
	Long: `autocorrect - dictionary-backed spelling correction
  - correct words and free text against a word-frequency table
  - rank candidates by edit distance, then frequency
  - serve the same engine over HTTP`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&dictionaryPath, "dictionary", "d", "", "frequency dictionary (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noRedis, "no-redis", false, "ignore the Redis custom dictionary")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(correctCmd)
	rootCmd.AddCommand(candidatesCmd)
	rootCmd.AddCommand(topCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dictionaryPath != "" {
		cfg.DictionaryPath = dictionaryPath
	}
	if noRedis {
		cfg.Redis.Enabled = false
	}
	return cfg, nil
}

// cliLogger writes human-readable logs to stderr; info chatter only with debug.
func cliLogger(w io.Writer, level string) *slog.Logger {
	lvl, _ := config.ParseLevel(level)
	if lvl < slog.LevelWarn && lvl != slog.LevelDebug {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// withService loads config and dictionary and runs fn against the service.
func withService(cmd *cobra.Command, fn func(svc *corrector.Service) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, closeDict, err := server.Bootstrap(ctx, cfg, cliLogger(cmd.ErrOrStderr(), cfg.LogLevel))
	if err != nil {
		return err
	}
	defer closeDict()
	return fn(svc)
}
