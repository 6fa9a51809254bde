package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-list-backend/internal/api/routes"
	"todo-list-backend/internal/auth"
	"todo-list-backend/internal/config"
	"todo-list-backend/internal/database"
	"todo-list-backend/internal/logger"
	"todo-list-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "todo-list-backend/docs" // This is needed for swag
)

//	@title			Todo List Backend API
//	@version		1.0
//	@description	Multi-tenant todo list API. Users belong to one organization and only see that organization's entries.

//	@host		localhost:8000
//	@BasePath	/api

//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						sessionid

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	sessions, err := auth.NewSessionService(auth.NewSessionConfig(cfg), repository.NewSessionRepository(db), repository.NewUserRepository(db))
	if err != nil {
		logrus.Fatal("Failed to initialize session service: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go purgeSessions(ctx, sessions, cfg.SessionTTL)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// purgeSessions drops expired sessions at startup and then once per TTL
func purgeSessions(ctx context.Context, sessions *auth.SessionService, every time.Duration) {
	purge := func() {
		n, err := sessions.PurgeExpired()
		if err != nil {
			logrus.WithError(err).Warn("Failed to purge expired sessions")
			return
		}
		if n > 0 {
			logrus.WithField("count", n).Info("Purged expired sessions")
		}
	}

	purge()

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purge()
		}
	}
}
