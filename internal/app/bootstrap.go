package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/bookstore/internal/config"
	"github.com/ferdiebergado/bookstore/internal/middleware"
	"github.com/ferdiebergado/bookstore/internal/pkg/logging"
	"github.com/ferdiebergado/bookstore/internal/platform/db"
	"github.com/ferdiebergado/bookstore/internal/platform/email"
	"github.com/ferdiebergado/bookstore/internal/platform/llm"
	"github.com/ferdiebergado/bookstore/internal/platform/router"
	"github.com/ferdiebergado/bookstore/internal/platform/validation"
	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
)

const (
	cfgFile = "config.json"
	envFile = ".env"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := loadEnv(); err != nil {
		return err
	}

	opts, err := config.New(cfgFile)
	if err != nil {
		return err
	}

	logging.SetupLogger(opts.App.Env, opts.App.LogLevel, os.Stdout)

	dbConn, err := db.NewConnection(signalCtx, opts.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(signalCtx, dbConn, opts.DB.Driver); err != nil {
		return err
	}

	providers, err := setupProviders(opts)
	if err != nil {
		return err
	}

	api := New(opts, dbConn, providers, Middlewares(opts))
	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// loadEnv reads .env outside production. A missing file is not an error.
func loadEnv() error {
	if os.Getenv("ENV") == "production" {
		return nil
	}

	if _, err := os.Stat(envFile); err != nil {
		slog.Debug("no env file loaded", "file", envFile, "reason", err)
		return nil
	}

	if err := env.Load(envFile); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	return nil
}

// Middlewares returns the global middlewares in the order they wrap a request.
// Metrics comes last so that it sees the request the mux records the route
// pattern on.
func Middlewares(opts *config.Options) []router.Middleware {
	return []router.Middleware{
		goexpress.RecoverFromPanic,
		middleware.RequestID,
		middleware.InjectWriter,
		middleware.LogRequest,
		middleware.CORS(opts.CORS),
		middleware.ContextGuard,
		middleware.Metrics,
	}
}

func setupProviders(opts *config.Options) (*Providers, error) {
	if opts.LLM.APIKey == "" {
		slog.Warn("LLM_API_KEY is not set, cart suggestions will fail")
	}

	providers := &Providers{
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
		Completer: llm.NewOpenAICompleter(opts.LLM, nil),
	}

	if !opts.Email.Enabled() {
		slog.Info("Order notifications are disabled.")
		return providers, nil
	}

	mailer, err := email.NewSMTPMailer(opts.Email.SMTP, opts.Email)
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}
	providers.Mailer = mailer

	return providers, nil
}
