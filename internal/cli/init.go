// Package cli holds the start-up steps shared by the gaston commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/adrianAraqueG/gaston/internal/amqp"
	"github.com/adrianAraqueG/gaston/internal/config"
	"github.com/adrianAraqueG/gaston/internal/log"
	"github.com/adrianAraqueG/gaston/internal/storage"
	"github.com/adrianAraqueG/gaston/internal/store"
)

// amqpDialAttempts is kept low; an interactive command should not hang on
// an absent broker.
const amqpDialAttempts = 2

// SetupLogger builds the application logger from cfg and sets it as the
// slog default.
func SetupLogger(cfg *config.Config, w io.Writer) *log.Logger {
	lc := log.DefaultConfig()
	lc.Level = log.ParseLevel(cfg.LogLevel)
	lc.Format = cfg.LogFormat
	if w != nil {
		lc.Output = w
	}
	logger := log.New(lc)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile(paths ...string) {
	_ = godotenv.Load(paths...)
}

func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func InitCookieStore(logger *log.Logger, dbPath string) (*storage.CookieStore, error) {
	cs, err := storage.NewCookieStore(dbPath)
	if err != nil {
		logger.Error("Failed to initialize session store", log.FieldError, err, "path", dbPath)
		return nil, fmt.Errorf("session store: %w", err)
	}
	return cs, nil
}

// InitPublisher connects to the broker when AMQP_URL is set. A broker that
// cannot be reached disables notifications instead of failing the command.
// The returned close func is never nil.
func InitPublisher(ctx context.Context, cfg *config.Config, logger *log.Logger) (store.Publisher, func()) {
	noop := func() {}
	if cfg.AMQPURL == "" {
		return nil, noop
	}
	client, err := amqp.NewClient(ctx, cfg.AMQPURL, cfg.AMQPExchange, amqpDialAttempts, logger)
	if err != nil {
		logger.Warn("Change notifications disabled", log.FieldError, err)
		return nil, noop
	}
	return client, func() {
		if err := client.Close(); err != nil {
			logger.Debug("Failed to close AMQP client", log.FieldError, err)
		}
	}
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM, so an
// interrupted request is abandoned cleanly.
func SignalContext(parent context.Context, logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String(), log.FieldOperation, log.OpShutdown)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
