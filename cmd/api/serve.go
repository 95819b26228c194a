package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"penguin-api/internal/adapters/storage"
	"penguin-api/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := storage.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Warn("closing store", map[string]any{"error": err.Error()})
			}
		}()
		log.Info("store ready", map[string]any{"driver": store.Driver})

		srv := &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router.NewRouter(router.Options{Logger: log, Penguins: store.Penguins}),
			ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSeconds) * time.Second,
			WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSeconds) * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting server", map[string]any{"addr": srv.Addr})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// penguin-api sin subcomando = serve
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = serveCmd.RunE
}
