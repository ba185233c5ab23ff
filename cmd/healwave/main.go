package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"healwave/internal/config"
	"healwave/internal/preset"
	"healwave/internal/server"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Fresh process, fresh resolver state.
	preset.Reset()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     server.New(cfg, logger).Router(),
		ReadTimeout: 10 * time.Second,
		// Long generations push WAV bodies of hundreds of MB.
		WriteTimeout: 5 * time.Minute,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("healwave listening",
		zap.Int("port", cfg.Port),
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Int("max_duration_minutes", cfg.MaxDurationMinutes),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("http server", zap.Error(err))
	}
}
