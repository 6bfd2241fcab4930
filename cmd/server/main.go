package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tareqmahmud/letterdesk/internal/config"
	"github.com/tareqmahmud/letterdesk/internal/database"
	"github.com/tareqmahmud/letterdesk/internal/handler"
	"github.com/tareqmahmud/letterdesk/internal/identity"
	"github.com/tareqmahmud/letterdesk/internal/logger"
	"github.com/tareqmahmud/letterdesk/internal/repository"
	"github.com/tareqmahmud/letterdesk/internal/router"
	"github.com/tareqmahmud/letterdesk/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		zlog.Fatal("open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		zlog.Fatal("ensure schema", zap.Error(err))
	}
	cancel()

	var idp identity.Provider
	if cfg.IDPBaseURL != "" {
		idp = identity.NewHTTPProvider(cfg.IDPBaseURL, cfg.IDPAPIKey)
	} else {
		zlog.Warn("IDP_BASE_URL not set; bulk imports will skip identity sync")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		zlog.Warn("redis unavailable; cache and rate limiting disabled")
	}

	importer := service.NewImporter(db, idp, zlog)
	events := service.NewEventPublisher(cfg.AMQPURL, zlog)

	h := router.Handlers{
		Users:      handler.NewUserHandler(repository.NewUserRepo(db), importer),
		Consumers:  handler.NewConsumerHandler(repository.NewConsumerRepo(db), importer),
		Activities: handler.NewActivityHandler(repository.NewActivityRepo(db), events, zlog),
		Letters:    handler.NewLetterHandler(),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	zlog.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
