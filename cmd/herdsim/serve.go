package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/herdsim/internal/config"
	"github.com/rgehrsitz/herdsim/internal/server"
	"github.com/rgehrsitz/herdsim/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the projection HTTP API",
	Long: `Run the projection HTTP API.

Settings come from the environment, optionally loaded from a .env file:
  HERDSIM_PORT        listen port (default 8080)
  HERDSIM_CACHE_SIZE  memoized projections (default 128)
  HERDSIM_RULES_FILE  YAML rules table overriding the defaults
  HERDSIM_LOG_LEVEL   debug, info, warn or error (default info)`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		envFile, _ := cmd.Flags().GetString("env-file")
		cfg, err := config.LoadServerConfig(envFile)
		if err != nil {
			log.Fatal(err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetString("port")
		}

		zl, err := logger.New(cfg.LogLevel)
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = zl.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := server.Run(ctx, cfg, zl); err != nil {
			zl.Fatal("server stopped", zap.Error(err))
		}
	},
}

func init() {
	serveCmd.Flags().String("env-file", "", "Load settings from this .env file")
	serveCmd.Flags().String("port", "", "Override HERDSIM_PORT")

	rootCmd.AddCommand(serveCmd)
}
