package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/config"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/infra"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/router"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// NewDatabase runs the migrations itself.
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Worker pool for async tasks (account-approval emails). Handlers are
	// wired here, at the composition root. Without redis the pool and the
	// dispatcher are skipped and emails are silently disabled.
	var dispatcher service.EmailDispatcher
	if rdb != nil {
		mailer := infra.NewMailer(cfg)
		workerHandlers := &worker.WorkerHandlers{
			Email: worker.NewEmailWorker(mailer),
		}
		worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)
		dispatcher = worker.NewDispatcher(rdb)
	}

	// Startup seeds: default admin account and the initial hub set.
	userRepo := repository.NewUserRepository(db)
	authSvc := service.NewAuthService(userRepo, cfg, dispatcher)
	if err := authSvc.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure admin account")
	}
	hubSvc := service.NewHubService(repository.NewHubRepository(db))
	if err := hubSvc.SeedDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default hubs")
	}

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("HubManager backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
