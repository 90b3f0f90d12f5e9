package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aidin1998/contacts_manager/api"
	"github.com/Aidin1998/contacts_manager/internal/config"
	"github.com/Aidin1998/contacts_manager/internal/contacts"
	"github.com/Aidin1998/contacts_manager/internal/database"
	"github.com/Aidin1998/contacts_manager/pkg/logger"
	"github.com/Aidin1998/contacts_manager/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const poolStatsInterval = 30 * time.Second

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions, err := database.NewSessionManager(cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to configure database", zap.Error(err))
	}
	defer sessions.Close()

	contactSvc := contacts.NewService(zapLogger, sessions)
	if cfg.Database.AutoMigrate {
		if err := contactSvc.Migrate(); err != nil {
			zapLogger.Fatal("Failed to migrate database schema", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Schedule DB pool metrics collection
	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				metrics.ObserveDBStats(sessions.Dialect(), sessions.Stats())
			}
		}
	}()

	apiServer := api.NewServer(zapLogger, sessions, contactSvc, api.Options{
		Debug:       cfg.Debug,
		CORSOrigins: cfg.Server.CORSOrigins,
		HealthQuery: cfg.Health.Query,
	})
	httpServer := apiServer.HTTPServer(cfg.Addr())

	go func() {
		zapLogger.Info("Starting API server",
			zap.String("addr", httpServer.Addr),
			zap.String("dialect", sessions.Dialect()),
			zap.Bool("debug", cfg.Debug))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Graceful shutdown failed", zap.Error(err))
	}

	zapLogger.Info("Server exited properly")
}
