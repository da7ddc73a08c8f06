package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bctDaGithub/orchid-storefront/clients"
	"github.com/bctDaGithub/orchid-storefront/config"
	"github.com/bctDaGithub/orchid-storefront/events"
	"github.com/bctDaGithub/orchid-storefront/logger"
	"github.com/bctDaGithub/orchid-storefront/middleware"
	"github.com/bctDaGithub/orchid-storefront/routes"
	"github.com/bctDaGithub/orchid-storefront/store"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	var kv store.KV
	switch cfg.StoreBackend {
	case "redis":
		kv = store.NewRedisStore(store.NewRedisClient(cfg.RedisURL), cfg.StateTTL)
	default:
		kv = store.NewFileStore(cfg.StoreFile)
	}

	bus := events.NewBus()
	api := clients.New(cfg.APIBaseURL, cfg.RequestTimeout, logger.Log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger(), middleware.RateLimit())

	routes.Register(router, kv, bus, api, logger.Log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Storefront is running",
			zap.String("port", cfg.Port),
			zap.String("api_base_url", cfg.APIBaseURL),
			zap.String("store_backend", cfg.StoreBackend),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Shutdown error", zap.Error(err))
	}
	logger.Log.Info("Server shutdown complete.")
}
