package main

import (
	"penguin-api/internal/adapters/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the store schema and exit",
	Long:  "Applies the schema of the configured store. With the memory driver there is nothing to do.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		if err := storage.Migrate(cmd.Context(), cfg.Store); err != nil {
			return err
		}
		log.Info("schema applied", map[string]any{"driver": cfg.Store.Driver})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
