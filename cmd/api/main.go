// @title        Penguin API
// @version      1.0
// @description  CRUD over penguin records stored as JSON documents.
// @BasePath     /
package main

import (
	"os"

	"penguin-api/internal/platform/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Antes de cargar la config no hay logger configurado: usamos el de env.
		logger.NewFromEnv().Error("command failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
