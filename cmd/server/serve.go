package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/config"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/api/handler"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/api/middleware"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/api/router"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/database"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/jwt"
	applogger "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/logger"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/redis"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  serveCommand,
	}
}

// bootstrap loads config, the logger and the database shared by every command.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, logger, db, nil
}

func serveCommand(_ *cobra.Command, _ []string) error {
	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer func() { _ = database.Close(db) }()

	logger.Info("starting server",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get sql.DB: %w", err)
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			return err
		}
	}

	// Redis is optional. The interfaces stay nil without it.
	var (
		tokens  service.TokenStore
		limiter middleware.Limiter
		cache   handler.Pinger
	)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, logout revocation and login rate limiting disabled", zap.Error(err))
	} else {
		defer func() { _ = rdb.Close() }()
		tokens, limiter, cache = rdb, rdb, rdb
	}

	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwt.NewManager(&cfg.Auth), tokens, logger)
	h := handler.NewHandler(svc, repo, cache)
	engine := router.Setup(cfg, h, svc.Auth, limiter, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}
