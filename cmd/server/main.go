package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	docs "ninja-api-forge/docs"
	appmarketdata "ninja-api-forge/internal/application/service/marketdata"
	"ninja-api-forge/internal/config"
	"ninja-api-forge/internal/infrastructure/injective"
	infrahttp "ninja-api-forge/internal/interfaces/http"
	"ninja-api-forge/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := log.Configure(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.MaxAge); err != nil {
		log.Fatalf("failed to configure logger: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()

	client := injective.NewClient(cfg.Upstream, log)
	marketdataService := appmarketdata.NewService(client)
	handler := infrahttp.NewHandler(marketdataService, infrahttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		DocsEnabled:    cfg.Docs.Enabled,
	}, log)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logger.Fields{
			"addr":        cfg.HTTP.Addr(),
			"env":         cfg.Env,
			"lcd_url":     cfg.Upstream.LCDURL,
			"indexer_url": cfg.Upstream.IndexerURL,
		}).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("server error: %v", err)
	}
	log.Info("server stopped")
}
