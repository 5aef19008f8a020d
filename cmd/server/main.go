package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KK-9684/vue-sockets/internal/catalog"
	"github.com/KK-9684/vue-sockets/internal/config"
	"github.com/KK-9684/vue-sockets/internal/httpapi"
	"github.com/KK-9684/vue-sockets/internal/logging"
	"github.com/KK-9684/vue-sockets/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// No catalog, no draft.
	records, err := loadRecords(cfg)
	if err != nil {
		logger.Fatal("catalog source failed", zap.Error(err))
	}
	cat, err := catalog.Load(records)
	if err != nil {
		logger.Fatal("catalog load failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := session.New(ctx, cat, logger)

	// Build the router *with* the session injected
	handler := httpapi.SetupRoutes(s, cfg.PublicDir, logger)
	srv := &http.Server{Addr: cfg.Addr, Handler: handler}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.Int("characters", cat.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func loadRecords(cfg config.Config) ([]catalog.Record, error) {
	if cfg.CatalogDSN != "" {
		return catalog.FromPostgres(cfg.CatalogDSN)
	}
	return catalog.FromFile(cfg.CatalogPath)
}
