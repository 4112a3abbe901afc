package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/tournament-finder/config"
	"github.com/Dosada05/tournament-finder/db"
	"github.com/Dosada05/tournament-finder/handlers"
	"github.com/Dosada05/tournament-finder/live"
	"github.com/Dosada05/tournament-finder/repositories"
	api "github.com/Dosada05/tournament-finder/routes"
	"github.com/Dosada05/tournament-finder/services"
	"github.com/Dosada05/tournament-finder/storage"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/go-chi/chi/v5"
)

const initialLoadTimeout = 30 * time.Second

// @title Tournament Finder API
// @version 1.0
// @description Browse, filter, sort and register for esports tournaments.
// @BasePath /
func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("log_level", cfg.LogLevel.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Источник турниров: Postgres, если задан DATABASE_URL, иначе встроенные фикстуры
	var tournamentRepo repositories.TournamentRepository
	if cfg.DatabaseURL != "" {
		dbConn, err := openDatabase(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("failed to prepare database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			} else {
				logger.Info("database connection closed")
			}
		}()
		tournamentRepo = repositories.NewPostgresTournamentRepository(dbConn)
		logger.Info("using postgres tournament source")
	} else {
		tournamentRepo = repositories.NewFixtureTournamentRepository(cfg.SimulatedLatency)
		logger.Info("using fixture tournament source", slog.Duration("latency", cfg.SimulatedLatency))
	}

	// Архив заявок (Cloudflare R2 или память)
	var archive storage.ObjectStore
	if cfg.UseR2() {
		archive, err = storage.NewCloudflareR2Store(ctx, storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 archive", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 registration archive initialized", slog.String("bucket", cfg.R2BucketName))
	} else {
		archive = storage.NewMemoryStore()
		logger.Info("in-memory registration archive initialized")
	}

	// Инициализация WebSocket Hub
	wsHub := live.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket Hub started")

	// Инициализация сервисов
	tournamentService := services.NewTournamentService(tournamentRepo, wsHub, logger)
	sessionService := services.NewSessionService(tournamentService, logger)
	registrationService := services.NewRegistrationService(tournamentService, archive, wsHub, logger, services.RegistrationServiceConfig{
		JWTSecret:       []byte(cfg.JWTSecretKey),
		Latency:         cfg.SimulatedLatency,
		EnforceDeadline: cfg.EnforceDeadline,
	})
	logger.Info("Services initialized")

	// Инициализация обработчиков HTTP
	healthHandler := handlers.NewHealthHandler(tournamentService, sessionService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, tournamentService, cfg.CORSOrigins)

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		logger,
		cfg.CORSOrigins,
		healthHandler,
		tournamentHandler,
		registrationHandler,
		sessionHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		// Cold start: the first request must already see the list.
		if err := initialLoad(ctx, tournamentService); err != nil {
			logger.Error("initial tournament load failed", slog.Any("error", err))
		}
		logger.Info("starting in Lambda mode")
		lambda.StartWithOptions(httpadapter.New(router).ProxyWithContext, lambda.WithContext(ctx))
		return
	}

	go func() {
		if err := initialLoad(ctx, tournamentService); err != nil {
			logger.Error("initial tournament load failed", slog.Any("error", err))
		}
	}()

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

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

func initialLoad(ctx context.Context, ts *services.TournamentService) error {
	loadCtx, cancel := context.WithTimeout(ctx, initialLoadTimeout)
	defer cancel()
	_, err := ts.Load(loadCtx)
	return err
}

// openDatabase connects, creates the schema and seeds an empty table with the
// fixture tournaments.
func openDatabase(ctx context.Context, dsn string, logger *slog.Logger) (*sql.DB, error) {
	dbConn, err := db.Connect(dsn, 5*time.Second, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := db.EnsureSchema(ctx, dbConn); err != nil {
		dbConn.Close()
		return nil, err
	}
	seeded, err := db.SeedTournaments(ctx, dbConn, repositories.FixtureTournaments())
	if err != nil {
		dbConn.Close()
		return nil, err
	}
	if seeded > 0 {
		logger.Info("tournaments table seeded", slog.Int("rows", seeded))
	}
	return dbConn, nil
}
