// Package server wires the application together: database, services,
// handlers, routes, background maintenance, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/niiakoadjei/BlogApp/internal/auth"
	"github.com/niiakoadjei/BlogApp/internal/config"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/database"
	"github.com/niiakoadjei/BlogApp/internal/handlers"
	"github.com/niiakoadjei/BlogApp/internal/repository"
	"github.com/niiakoadjei/BlogApp/internal/service"
	"github.com/niiakoadjei/BlogApp/migrations"
)

// Server is the application server holding all wired components.
type Server struct {
	config      *config.AppConfig
	db          *database.Pool
	httpServer  *http.Server
	authService *service.AuthService

	authHandler  *handlers.AuthHandler
	userHandler  *handlers.UserHandler
	postHandler  *handlers.PostHandler
	resetHandler *handlers.PasswordResetHandler
	authProvider auth.AuthProvider
}

// NewServer creates a fully wired server from configuration.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrations.NewMigrator(db).Run(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService := auth.NewJWTService(&cfg.JWT)
	resetTokens := auth.NewResetTokenService(&cfg.JWT)
	passwordConfig := &auth.PasswordConfig{Cost: cfg.PasswordHash.Cost}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	imageService, err := service.NewImageService(cfg.Uploads.ImageDir)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set up image storage: %w", err)
	}
	emailSender := service.NewSendGridEmailService(&cfg.Mail)

	authService := service.NewAuthService(
		userRepo, sessionRepo, jwtService, resetTokens,
		emailSender, passwordConfig, cfg.JWT.Expiry,
	)
	userService := service.NewUserService(userRepo, sessionRepo, imageService, passwordConfig)
	postService := service.NewPostService(postRepo, userRepo)

	s := &Server{
		config:       cfg,
		db:           db,
		authService:  authService,
		authHandler:  handlers.NewAuthHandler(authService, !cfg.App.IsDevelopment()),
		userHandler:  handlers.NewUserHandler(userService),
		postHandler:  handlers.NewPostHandler(postService),
		resetHandler: handlers.NewPasswordResetHandler(authService),
		authProvider: auth.NewJWTAuthProvider(jwtService),
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// Start runs the server until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	maintenanceCtx, stopMaintenance := context.WithCancel(context.Background())
	defer stopMaintenance()
	s.startMaintenance(maintenanceCtx)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.db.Close()
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.db.Close()
		return fmt.Errorf("forced shutdown: %w", err)
	}

	s.db.Close()
	log.Info().Msg("Server stopped")

	return nil
}

// startMaintenance runs periodic cleanup of expired sessions.
func (s *Server) startMaintenance(ctx context.Context) {
	ticker := time.NewTicker(constants.DBMaintenanceInterval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.authService.CleanupExpiredSessions(ctx); err != nil {
					log.Error().Err(err).Msg("Session cleanup failed")
				}
			}
		}
	}()
}
