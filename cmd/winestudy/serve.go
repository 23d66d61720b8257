package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"winestudy/internal/config"
	"winestudy/internal/handlers"
	"winestudy/internal/repository"
	"winestudy/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db)

	if err := config.Cfg.ValidateServe(); err != nil {
		return err
	}
	slog.Info("Application starting...")

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	progressRepo := repository.NewGormProgressRepository()
	catalogRepo := repository.NewGormCatalogRepository()
	studyRepo := repository.NewGormStudyRepository()
	tastingRepo := repository.NewGormTastingRepository()
	seedRepo := repository.NewGormSeedRepository()

	tokens := service.NewTokenService(config.Cfg.JWT.SecretKey, config.Cfg.JWT.AccessTokenTTL)
	oauth := service.NewGoogleOAuthProvider(config.Cfg.OAuth.Google)

	services := handlers.Services{
		Auth:     service.NewAuthService(db, userRepo, progressRepo, tokens, oauth),
		Catalog:  service.NewCatalogService(db, catalogRepo, config.Cfg.App.SearchLimit),
		Study:    service.NewStudyService(db, studyRepo, progressRepo),
		Quiz:     service.NewQuizService(db, studyRepo, progressRepo, config.Cfg.App.QuizDefaultLimit, config.Cfg.App.QuizMaxLimit),
		Progress: service.NewProgressService(db, progressRepo),
		Tasting:  service.NewTastingService(db, tastingRepo, progressRepo),
		Seed:     service.NewSeedService(db, seedRepo),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:         logger,
		DB:             db,
		Tokens:         tokens,
		TokenTTL:       config.Cfg.JWT.AccessTokenTTL,
		AllowedOrigins: config.Cfg.CORS.AllowedOrigins,
		CORSMaxAge:     config.Cfg.CORS.MaxAge,
		AdminSeedToken: config.Cfg.Admin.SeedToken,
		Registry:       registry,
	}, services)
	if config.Cfg.Admin.SeedToken != "" {
		slog.Warn("HTTP seed endpoint is enabled (POST /api/seed)")
	}

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  config.Cfg.Server.ReadTimeout,
		WriteTimeout: config.Cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
		return err
	case <-quit:
	case <-ctxDone(ctx):
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	slog.Info("Server exiting")
	return nil
}

// ctxDone は nil のコンテキストでも使えるように Done チャネルを返します。
func ctxDone(ctx context.Context) <-chan struct{} {
	if ctx == nil {
		return nil
	}
	return ctx.Done()
}
