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

	"go.opentelemetry.io/otel"

	"staffaudit/internal/auditlog"
	"staffaudit/internal/config"
	"staffaudit/internal/database"
	"staffaudit/internal/logger"
	"staffaudit/internal/server"
	"staffaudit/internal/services"
	"staffaudit/internal/validator"
)

// @title           Staff Audit API
// @version         1.0
// @description     Employee records with a per-department audit trail of every change.

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Audit log store, provisioned once before serving traffic
	store, err := auditlog.New(cfg.Audit, otel.GetTracerProvider())
	if err != nil {
		return fmt.Errorf("failed to create audit log store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warnf("audit log store close error: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = store.EnsureReady(ctx)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to provision audit table %q: %w", cfg.Audit.TableName, err)
	}
	log.Infow("Audit log store ready", "backend", cfg.Audit.Backend, "table", cfg.Audit.TableName)

	router := server.NewRouter(server.Deps{
		EmployeeService: services.NewEmployeeService(dbManager.DB()),
		AuditService:    services.NewAuditService(store),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting staffaudit server on port %s", cfg.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-stop:
		log.Infow("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
