package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"url-shortener/internal/config"
	"url-shortener/internal/domain"
	"url-shortener/internal/handler"
	"url-shortener/internal/logger"
	"url-shortener/internal/server"
	"url-shortener/internal/service"
	"url-shortener/internal/shortcode"
	"url-shortener/internal/store"
)

func main() {
	// .env is optional, env vars win either way
	_ = godotenv.Load()

	cfg := config.New()
	config.ParseEnv(cfg)

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	st := store.New(domain.RealClock{})
	gen := shortcode.NewGeneratorWithLength(cfg.CodeLength)
	alloc := shortcode.NewAllocatorWithBudget(gen, cfg.MaxCodeAttempts)
	svc := service.New(st, alloc)
	h := handler.New(svc, cfg.BaseURL)

	srv := server.New(server.Config{
		Address:         cfg.Address,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, h, log)

	log.Info("starting server",
		zap.String("address", cfg.Address),
		zap.String("base_url", cfg.BaseURL),
	)

	if err := srv.Run(context.Background()); err != nil {
		log.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
