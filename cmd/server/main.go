package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/karimfs/matchday/internal/api"
	"github.com/karimfs/matchday/internal/config"
	"github.com/karimfs/matchday/internal/db"
	"github.com/karimfs/matchday/internal/football"
	"github.com/karimfs/matchday/internal/logger"
	"github.com/karimfs/matchday/internal/repository/sqlite"
	"github.com/karimfs/matchday/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Matchday Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("football_api_base_url=%s", cfg.FootballAPIBaseURL)
	log.Debug("fetch_window_days=%d", cfg.FetchWindowDays)
	log.Debug("log_level=%s", cfg.LogLevel)
	if cfg.FootballAPIKey == "" {
		log.Warn("FOOTBALL_API_KEY is empty, match fetches will fail until one is set")
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	seenRepo := sqlite.NewSeenQuestionRepository(database.DB)
	prefRepo := sqlite.NewPreferenceRepository(database.DB)
	resultRepo := sqlite.NewQuizResultRepository(database.DB)

	// Services
	footballClient := football.New(cfg.FootballAPIBaseURL, cfg.FootballAPIKey)
	matchService := services.NewMatchService(footballClient, cfg.FetchWindowDays)
	quizService := services.NewQuizService(seenRepo, resultRepo)
	articleService := services.NewArticleService()

	srv := &api.Server{
		DB:             database,
		MatchService:   matchService,
		QuizService:    quizService,
		ArticleService: articleService,
		PreferenceRepo: prefRepo,
		AllowedOrigins: strings.Split(cfg.AllowedOrigins, ","),
	}

	// Fetch the initial match list in the background. A failed fetch is not
	// fatal; the server comes up and serves the empty state with the error
	// message attached.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := matchService.Refresh(ctx); err != nil {
			log.Warn("initial match fetch failed: %v", err)
		}
	}()

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Stop quiz session tickers
	log.Debug("stopping quiz sessions")
	quizService.Close()

	log.Info("===========================================")
	log.Info("Matchday Server Stopped")
	log.Info("===========================================")
}
