package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/bootstrap"
	"github.com/osse101/SpinSurvive_Go/internal/config"
	"github.com/osse101/SpinSurvive_Go/internal/game"
	"github.com/osse101/SpinSurvive_Go/internal/server"
	"github.com/osse101/SpinSurvive_Go/internal/sse"
	"github.com/osse101/SpinSurvive_Go/internal/wallet"
	"github.com/osse101/SpinSurvive_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// @title Spin & Survive API
// @version 1.0
// @description Single-player slot machine session: spins, double or nothing, daily bonus and stats.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		_ = logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	stateStore, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		return err
	}

	gate, err := bootstrap.NewDailyGate(cfg)
	if err != nil {
		_ = stateStore.Close()
		return err
	}

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = stateStore.Close()
		return err
	}
	eventHub := sse.NewHub()
	if err := bootstrap.RegisterEventHandlers(publisher, eventHub); err != nil {
		_ = stateStore.Close()
		return err
	}
	eventHub.Start()

	repo := wallet.NewRepository(stateStore, gate)
	gameService := game.NewService(repo, publisher, gate, game.DefaultRandomness(bootstrap.NewRandomSource(cfg)), nil)

	dailyWorker := worker.NewDailyResetWorker(gameService, nil)
	dailyWorker.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, stateStore, gameService, dailyWorker, eventHub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		EventHub:           eventHub,
		Server:             srv,
		DailyResetWorker:   dailyWorker,
		ResilientPublisher: publisher,
		Store:              stateStore,
	})
	return runErr
}
