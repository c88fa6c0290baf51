package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"movie-api/internal/api"
	"movie-api/internal/catalog"
	"movie-api/internal/domain"
	"movie-api/internal/service"
	"movie-api/internal/store"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func connectToDB(dbURL string, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	logger.Info("connected to postgres")
	return db, nil
}

// newMovieStore picks the Postgres store when DATABASE_URL is set and falls
// back to the in-memory store otherwise. The returned closer is a no-op for
// the in-memory case.
func newMovieStore(logger *slog.Logger) (store.MovieStore, func(), error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory movie store; data will not survive a restart")
		return store.NewMemoryMovieStore(), func() {}, nil
	}

	db, err := connectToDB(dbURL, logger)
	if err != nil {
		return nil, nil, err
	}
	pgStore, err := store.NewPostgresMovieStore(db, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	closer := func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close postgres connection", slog.String("error", err.Error()))
		}
	}
	return pgStore, closer, nil
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel()}))
	port := getEnv("PORT", "8080")

	movieStore, closeStore, err := newMovieStore(logger)
	if err != nil {
		logger.Error("failed to initialize movie store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	movieCatalog, err := catalog.Load()
	if err != nil {
		logger.Error("failed to load static movie catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("static movie catalog loaded", slog.Int("records", len(movieCatalog.Records())))

	movieService := service.New(movieStore, movieCatalog, domain.NewValidator(), logger)
	handler := api.NewMovieHandler(movieService, logger)
	router := api.NewRouter(handler, logger)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", slog.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	} else {
		logger.Info("HTTP server stopped")
	}
}
