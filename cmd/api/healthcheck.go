package main

import (
	"fmt"
	"time"

	"penguin-api/internal/client"

	"github.com/spf13/cobra"
)

var (
	healthURL     string
	healthTimeout time.Duration
)

// healthcheck sirve como HEALTHCHECK de contenedor: exit 0 si /health responde 200.
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that a running server answers /health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		url := healthURL
		if url == "" {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			url = "http://127.0.0.1" + cfg.Addr()
		}

		c, err := client.New(url, healthTimeout)
		if err != nil {
			return err
		}
		if err := c.Health(cmd.Context()); err != nil {
			return fmt.Errorf("unhealthy: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "healthy")
		return nil
	},
}

func init() {
	healthcheckCmd.Flags().StringVar(&healthURL, "url", "", "server base URL (default http://127.0.0.1:$PORT)")
	healthcheckCmd.Flags().DurationVar(&healthTimeout, "timeout", 3*time.Second, "request timeout")
	rootCmd.AddCommand(healthcheckCmd)
}
