package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amparo-api/core/cache"
	"amparo-api/core/config"
	"amparo-api/core/database"
	"amparo-api/core/logger"
	"amparo-api/core/middleware"
	"amparo-api/core/storage"
	"amparo-api/core/worker"
	"amparo-api/modules/auth"
	"amparo-api/modules/notification"
	"amparo-api/modules/participant"
	"amparo-api/modules/report"
	"amparo-api/modules/schedule"

	"github.com/labstack/echo/v4"
)

// Run wires the whole service and blocks until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer redisCache.Close()

	workerClient := worker.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer workerClient.Close()

	workerServer := worker.NewServer(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := workerServer.Start(); err != nil {
		return fmt.Errorf("failed to start worker server: %w", err)
	}
	defer workerServer.Shutdown()

	uploader := storage.NewUploader(cfg.S3)

	mw := middleware.New(redisCache)

	e := echo.New()
	e.HideBanner = true
	mw.Setup(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	auth.Init(api, redisCache, workerClient, mw)
	notifSvc := notification.Init(api, &db, mw)
	participantRepo := participant.Init(api, &db, mw)
	schedule.Init(api, participantRepo, notifSvc, mw)
	report.Init(api, participantRepo, uploader, mw)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Server:Run:Listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:Start:Error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server:Run:ShuttingDown")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
