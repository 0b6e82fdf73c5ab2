package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/config"
	"fyyur/internal/logging"
	"fyyur/internal/store"
	"fyyur/migrations"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Fyyur stopped")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	logging.SetGlobalLogger(logger)

	db, err := openDatabase(context.Background(), cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up("pgx", cfg.Database.URL); err != nil {
			return err
		}
		logger.Info().Msg("Database schema is current")
	}

	if cfg.Database.SeedDemoData {
		seeded, err := seedDemoData(context.Background(), db)
		if err != nil {
			return err
		}
		if seeded {
			logger.Info().Msg("Demo venues, artists and shows loaded")
		}
	}

	dataStore := store.New(db)

	handler, err := newHTTPHandler(cfg, logger, dataStore)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("Fyyur listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info().Msg("Server exited")
	return nil
}
