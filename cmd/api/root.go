package main

import (
	"penguin-api/internal/config"
	"penguin-api/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "penguin-api",
	Short: "HTTP CRUD service for penguin records",
	Long: `penguin-api exposes create, read, update and delete over penguin records
backed by a document store (memory, postgres or sqlite).

Configuration: defaults < TOML file (--config or CONFIG_FILE) < environment (.env included).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

// loadConfig carga .env, después la config, y arma el logger a partir de ella.
func loadConfig() (*config.Config, logger.Logger, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	return cfg, log, nil
}
