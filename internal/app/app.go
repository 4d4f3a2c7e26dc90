package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"weekwise/backend/internal/api"
	"weekwise/backend/internal/config"
	"weekwise/backend/internal/database"
	"weekwise/backend/internal/llm"
	"weekwise/backend/internal/repository"
	"weekwise/backend/internal/service"
)

// App bundles the process-lifetime resources.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

// NewApp wires the dependency graph: database, repository, provider client,
// services, handlers, and the HTTP server.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := repository.NewSQLiteRepository(db)
	provider := llm.NewGitHubProvider(cfg.AIEndpoint, cfg.GitHubToken, cfg.AIModel)
	chatService := service.NewChatService(provider, repo)
	boardService := service.NewBoardService(repo)

	chatHandler := api.NewChatHandler(chatService, cfg)
	boardHandler := api.NewBoardHandler(boardService)
	router := api.NewRouter(chatHandler, boardHandler, cfg.StaticDir)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		// The write timeout must outlast the generation route timeout.
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

// Run is the process entry point behind main. It returns the exit code
// instead of calling os.Exit so deferred cleanup always runs.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this
		// critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	if cfg.GitHubToken == "" {
		// Startup proceeds; generation requests will fail at call time.
		slog.Warn("GITHUB_TOKEN is not set; model calls will be rejected by the provider")
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.")

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort)
		errCh <- app.Server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
