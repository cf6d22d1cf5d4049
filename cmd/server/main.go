package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/Anmol-Srv/blog-api/config"
	"github.com/Anmol-Srv/blog-api/internal/api/handler"
	"github.com/Anmol-Srv/blog-api/internal/api/router"
	"github.com/Anmol-Srv/blog-api/internal/repository"
	"github.com/Anmol-Srv/blog-api/internal/service"
	"github.com/Anmol-Srv/blog-api/pkg/database"
	"github.com/Anmol-Srv/blog-api/pkg/logger"
	"github.com/Anmol-Srv/blog-api/pkg/telemetry"
)

// @title Blog API
// @version 1.0
// @description 用户 / 资料 / 文章 / 标签的 CRUD REST 服务
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		stdlog.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Fatal("init sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg)
		if err != nil {
			logger.Fatal("init telemetry", zap.Error(err))
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}
	if cfg.Seed.Enabled {
		if err := database.Seed(db); err != nil {
			logger.Fatal("seed database", zap.Error(err))
		}
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	h := handler.New(
		service.NewUserService(userRepo),
		service.NewProfileService(profileRepo, userRepo),
		service.NewPostService(postRepo, tagRepo),
		service.NewTagService(tagRepo),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.New(cfg, h),
	}

	go func() {
		logger.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
