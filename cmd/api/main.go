package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/venture-studio/engine/internal/api"
	"github.com/venture-studio/engine/internal/api/handlers"
	"github.com/venture-studio/engine/internal/migrations"
	"github.com/venture-studio/engine/internal/repository"
	"github.com/venture-studio/engine/internal/services"
	"github.com/venture-studio/engine/pkg/config"
	"github.com/venture-studio/engine/pkg/database"
	"github.com/venture-studio/engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting venture studio engine",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := migrations.Up(ctx, db); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}
	log.Info("database ready", zap.String("path", cfg.DatabasePath))

	repos := repository.New(db, cfg.QueryTimeout)

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = []byte("change-me-in-production-please")
	}

	authSvc := services.NewAuthService(repos.Users, jwtSecret, cfg.TokenTTL)
	auditSvc := services.NewAuditService(repos.Audit)

	router := api.NewRouter(api.Dependencies{
		Auth:             authSvc,
		AuthHandler:      handlers.NewAuthHandler(authSvc, auditSvc),
		VenturesHandler:  handlers.NewVenturesHandler(repos.Ventures, repos.Stats, auditSvc),
		DocumentsHandler: handlers.NewDocumentsHandler(repos.Documents, repos.Signatures, auditSvc),
		DashboardHandler: handlers.NewDashboardHandler(repos.Stats),
		AuditHandler:     handlers.NewAuditHandler(repos.Audit),
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
