package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"shortlink/shortlink/internal/config"
	"shortlink/shortlink/internal/db"
	httpserver "shortlink/shortlink/internal/http"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	pg, err := db.Open(cfg)
	if err != nil {
		logger.Fatal("database open failed", zap.Error(err))
	}
	defer pg.Close()

	if err := db.Migrate(pg); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	engine := httpserver.NewServer(cfg, pg, logger)

	srv := &http.Server{
		Addr:    cfg.BindAddr(),
		Handler: engine,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
