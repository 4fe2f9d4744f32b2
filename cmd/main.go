package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/Dosada05/club-records/config"
	"github.com/Dosada05/club-records/db"
	"github.com/Dosada05/club-records/handlers"
	"github.com/Dosada05/club-records/live"
	"github.com/Dosada05/club-records/repositories"
	api "github.com/Dosada05/club-records/routes"
	"github.com/Dosada05/club-records/services"
	"github.com/Dosada05/club-records/storage"
	"github.com/go-chi/chi/v5"
)

//go:generate swag init -d ../ -g cmd/main.go -o ../docs

// @title Club Records API
// @version 1.0
// @description Players, matches, stat records and reports for a single football club.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("driver", cfg.DatabaseDriver),
		slog.String("timezone", cfg.ClubLocation.String()))

	dbConn, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err = db.Migrate(migrateCtx, dbConn, cfg.DatabaseDriver)
	cancelMigrate()
	if err != nil {
		logger.Error("failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	var photoUploader storage.FileUploader
	if cfg.R2.Enabled() {
		photoUploader, err = storage.NewR2Uploader(context.Background(), cfg.R2)
		if err != nil {
			logger.Error("failed to initialize photo storage", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("photo storage initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Warn("photo storage is not configured, photo upload is disabled")
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	wsHub := live.NewHub(logger)
	go wsHub.Run(appCtx)
	logger.Info("live feed hub started")

	playerRepo := repositories.NewSQLPlayerRepository(dbConn, cfg.DatabaseDriver)
	matchRepo := repositories.NewSQLMatchRepository(dbConn, cfg.DatabaseDriver)
	statRepo := repositories.NewSQLStatRepository(dbConn, cfg.DatabaseDriver)
	reportRepo := repositories.NewSQLReportRepository(dbConn, cfg.DatabaseDriver)

	clock := services.NewClock(cfg.ClubLocation)
	playerService := services.NewPlayerService(playerRepo, photoUploader, logger)
	matchService := services.NewMatchService(matchRepo, wsHub, logger)
	statService := services.NewStatService(statRepo, matchRepo, wsHub, logger)
	reportService := services.NewReportService(reportRepo, matchService, statService)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		logger,
		cfg.CORSAllowedOrigins,
		handlers.NewAuthHandler(playerService),
		handlers.NewPlayerHandler(playerService),
		handlers.NewMatchHandler(matchService, clock),
		handlers.NewStatHandler(statService, matchService),
		handlers.NewReportHandler(reportService, clock),
		handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins),
		handlers.NewHealthHandler(dbConn),
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stopApp()
			os.Exit(1)
		}
		logger.Info("server stopped")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		// Hijacked websocket connections are not tracked by Shutdown.
		stopApp()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
