package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"univadmin/internal/cache"
	"univadmin/internal/commons"
	"univadmin/internal/infrastructure/logger"
	"univadmin/internal/infrastructure/redis"
	"univadmin/internal/records"
	"univadmin/internal/server"
)

func main() {
	cfg, err := commons.LoadConfig(".env")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()

	repo, closeStore, err := records.Open(startCtx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("opening record store", zap.Error(err))
	}
	defer closeStore()

	if cfg.Redis.Enabled {
		client, err := redis.NewClient(startCtx, cfg.Redis)
		if err != nil {
			zapLogger.Fatal("connecting to redis", zap.Error(err))
		}
		defer client.Close()

		orders := cache.NewCachedOrderRepository(repo, cache.NewRedisStore(client), cfg.Redis.TTL, zapLogger)
		repo = records.WithOrders(repo, orders)
		zapLogger.Info("order cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
	}

	controllers, err := server.NewControllers(repo, cfg, zapLogger, time.Now)
	if err != nil {
		zapLogger.Fatal("wiring controllers", zap.Error(err))
	}

	router := server.NewRouter(controllers, cfg.HTTP, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
