package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"autocorrect/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the correction API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx, cfg, server.NewLogger(cfg.LogLevel))
	},
}
