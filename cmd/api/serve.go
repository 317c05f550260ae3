package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"petshop-orders/internal/adapters/storage"
	"petshop-orders/internal/domain/catalog"
	"petshop-orders/internal/platform/config"
	"petshop-orders/internal/platform/logger"
	"petshop-orders/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	cache, closeCache, err := storage.OpenOrdersCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Warn("close order cache", map[string]any{"error": err})
		}
	}()

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: router.NewRouter(router.Options{
			Config:  cfg,
			Logger:  log,
			Cache:   cache,
			Catalog: cat,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":        cfg.Addr,
			"order_cache": cfg.OrderCache,
			"services":    len(cat.List()),
		})
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
