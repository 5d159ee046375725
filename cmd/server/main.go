package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inotes-app/inotes-backend/config"
	"github.com/inotes-app/inotes-backend/internal/email"
	"github.com/inotes-app/inotes-backend/internal/health"
	"github.com/inotes-app/inotes-backend/internal/infrastructure/mongo"
	ctxlog "github.com/inotes-app/inotes-backend/internal/log"
	"github.com/inotes-app/inotes-backend/internal/metrics"
	"github.com/inotes-app/inotes-backend/internal/sweeper"
	httptransport "github.com/inotes-app/inotes-backend/internal/transport/http"
	"github.com/inotes-app/inotes-backend/internal/transport/http/handler"
	"github.com/inotes-app/inotes-backend/internal/usecase"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	db, err := mongo.New(ctx, cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		stop()
		log.Fatalf("mongo: %v", err)
	}
	defer db.Close(context.Background())

	userRepo := mongo.NewUserRepository(db)
	sessionRepo := mongo.NewSessionRepository(db)
	resetTokenRepo := mongo.NewResetTokenRepository(db)
	noteRepo := mongo.NewNoteRepository(db)

	emailSender := email.NewSender(cfg, logger)

	// Credential + session lifecycle
	authUsecase := usecase.NewAuthUsecase(userRepo, sessionRepo, resetTokenRepo, emailSender)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Self-service profile
	userUsecase := usecase.NewUserUsecase(userRepo, sessionRepo, resetTokenRepo, noteRepo)
	userHandler := handler.NewUserHandler(userUsecase, logger)

	// Notes
	noteUsecase := usecase.NewNoteUsecase(noteRepo)
	noteHandler := handler.NewNoteHandler(noteUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(db, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authHandler, userHandler, noteHandler, sessionRepo, resetTokenRepo),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	sw := sweeper.New(sessionRepo, resetTokenRepo, logger)
	go func() {
		if err := sw.Start(ctx, cfg.SweepSchedule); err != nil {
			logger.Error("sweeper", "error", err)
		}
	}()

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
