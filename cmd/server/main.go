package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/api"
	"fintrack/internal/auth"
	"fintrack/internal/config"
	"fintrack/internal/logging"
	"fintrack/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, envErr := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Warn("no .env file loaded", zap.Error(envErr))
	}

	creds, err := auth.NewCredentialChecker(cfg.PasswordScheme)
	if err != nil {
		logger.Fatal("Error selecting password scheme", zap.Error(err))
	}

	st := store.New(
		store.WithCredentials(creds),
		store.WithLogger(logger.Named("store")),
	)
	server := api.NewServer(st, auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL), logger.Named("http"), cfg.StaticDir)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server running",
			zap.String("addr", "http://localhost"+cfg.Addr()),
			zap.String("password_scheme", cfg.PasswordScheme),
			zap.Bool("tokens", cfg.JWTSecret != ""),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", zap.Error(err))
		os.Exit(1)
	}
}
