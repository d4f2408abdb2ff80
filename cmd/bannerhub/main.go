package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bannerhub/bannerhub/internal/app"
	"github.com/bannerhub/bannerhub/internal/auth"
	"github.com/bannerhub/bannerhub/internal/banners"
	"github.com/bannerhub/bannerhub/internal/observability"
	"github.com/bannerhub/bannerhub/internal/platform/db"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	dbpool, err := db.New(ctx, cfg.DSN(), cfg.DBMaxConns)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	if cfg.DBAutoSchema {
		if err := db.EnsureSchema(ctx, dbpool); err != nil {
			logger.Error("ensure schema", slog.Any("error", err))
			dbpool.Close()
			os.Exit(1)
		}
	}

	metrics := observability.NewMetrics()
	metrics.ObservePool(func() observability.PoolStats { return dbpool.Stat() })

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	authService := auth.NewService(auth.NewRepository(dbpool), tokens, cfg.BcryptCost)
	bannerService := banners.NewService(banners.NewRepository(dbpool))

	router := app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		AuthHandler:   auth.NewHandler(logger, authService),
		BannerHandler: banners.NewHandler(logger, bannerService),
		Metrics:       metrics,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.Addr()), slog.Int("db_max_conns", int(cfg.DBMaxConns)))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http server", slog.Any("error", err))
		dbpool.Close()
		os.Exit(1)
	}
}
