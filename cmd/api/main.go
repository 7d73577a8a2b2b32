package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-planner/internal/audit"
	"github.com/BruksfildServices01/appointment-planner/internal/cache"
	"github.com/BruksfildServices01/appointment-planner/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-planner/internal/db"
	"github.com/BruksfildServices01/appointment-planner/internal/logger"
	"github.com/BruksfildServices01/appointment-planner/internal/middleware"
	"github.com/BruksfildServices01/appointment-planner/internal/routes"
	"github.com/BruksfildServices01/appointment-planner/internal/timezone"
)

func main() {

	cfg, envFileLoaded := config.Load()
	logger.Init(cfg.LogLevel)
	if !envFileLoaded {
		logger.Infof("no .env file found, using process environment")
	}
	if !timezone.IsValid(cfg.Timezone) {
		logger.Warnf("unknown APP_TIMEZONE %q, falling back to %s", cfg.Timezone, timezone.DefaultTimezone)
	}

	gin.SetMode(cfg.GinMode)

	db, err := dbpkg.Open(cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}

	// ======================================================
	// 🧰 LIST CACHE
	// ======================================================
	var listCache cache.ListCache = cache.Nop{}
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			logger.Fatalf("invalid REDIS_URL: %v", err)
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			logger.WithError(err).Warn("redis unreachable, list reads will hit the database until it recovers")
		}
		cancel()
		defer redisCache.Close()
		listCache = redisCache
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ======================================================
	// 🌍 ROUTER
	// ======================================================
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, listCache, auditDispatcher)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Infof("server running on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("forced shutdown")
	}

	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Infof("server stopped")
}
