// @title PetCare Marketplace API
// @version 1.0
// @description Sesión, perfil, carrito, checkout simulado y chat con doctor.
// @BasePath /
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

	"petcare-marketplace/internal/adapters/auth/demo"
	"petcare-marketplace/internal/adapters/storage"
	"petcare-marketplace/internal/config"
	"petcare-marketplace/internal/platform/logger"
	"petcare-marketplace/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	log := logger.New(logger.Options{Level: logger.Info, App: "petcare-api"})

	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, relying on environment", nil)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", map[string]any{"err": err})
		os.Exit(1)
	}

	log = logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.App.LogLevel),
		Format: logger.ParseFormat(cfg.App.LogFormat),
		App:    cfg.App.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// os.Exit recién acá: run ya corrió sus defers (storage, timers de chat)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

// openStorage es reemplazable en tests.
var openStorage = storage.Open

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	store, closeStore, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage %q: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error("error closing storage", map[string]any{"err": err})
		}
	}()

	app, err := router.NewRouter(ctx, router.Options{
		KV:           store,
		Verifier:     demo.NewVerifier(cfg.Demo),
		Logger:       log,
		ChatMinDelay: cfg.Chat.MinDelay,
		ChatMaxDelay: cfg.Chat.MaxDelay,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         cfg.App.Addr(),
		Handler:      app,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.Storage.Driver})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
