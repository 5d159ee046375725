package httptransport

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/inotes-app/inotes-backend/internal/repository"
	"github.com/inotes-app/inotes-backend/internal/transport/http/handler"
	"github.com/inotes-app/inotes-backend/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	noteHandler *handler.NoteHandler,
	sessions repository.SessionRepository,
	resetTokens repository.ResetTokenRepository,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(corsConfig())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	sessionMW := middleware.Session(sessions, logger)
	sweepSessions := middleware.SweepSessions(sessions, logger)
	sweepResetTokens := middleware.SweepResetTokens(resetTokens, logger)

	// Credential routes
	r.POST("/login", sweepSessions, authHandler.Login)
	r.POST("/register", sweepSessions, authHandler.Register)
	r.POST("/logout", sweepSessions, sessionMW, authHandler.Logout)
	r.POST("/reset-password", sweepSessions, sweepResetTokens, authHandler.ResetPassword)
	r.POST("/reset-password/confirm", sweepSessions, sweepResetTokens, authHandler.ResetPasswordConfirm)

	// Protected note routes
	notes := r.Group("/notes", sessionMW, sweepSessions)
	notes.GET("", noteHandler.List)
	notes.GET("/:id", noteHandler.GetByID)
	notes.POST("", noteHandler.Create)
	notes.PATCH("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	// Protected self-service user routes
	users := r.Group("/users", sweepSessions, sessionMW)
	users.GET("", userHandler.Get)
	users.PATCH("", userHandler.Update)
	users.DELETE("", userHandler.Delete)
	users.POST("/change-password", userHandler.ChangePassword)

	return r
}

func corsConfig() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	return cors.New(cfg)
}
