package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ferdiebergado/bookstore/internal/ai"
	"github.com/ferdiebergado/bookstore/internal/book"
	"github.com/ferdiebergado/bookstore/internal/cart"
	"github.com/ferdiebergado/bookstore/internal/config"
	"github.com/ferdiebergado/bookstore/internal/order"
	"github.com/ferdiebergado/bookstore/internal/platform/db"
	"github.com/ferdiebergado/bookstore/internal/platform/email"
	"github.com/ferdiebergado/bookstore/internal/platform/llm"
	"github.com/ferdiebergado/bookstore/internal/platform/router"
	"github.com/ferdiebergado/bookstore/internal/platform/validation"
	"github.com/ferdiebergado/bookstore/internal/review"
)

// Providers are the adapters the application is assembled from. Mailer may be
// nil, which disables order notifications.
type Providers struct {
	Router    router.Router
	Validator validation.Validator
	Completer llm.Completer
	Mailer    email.Mailer
}

type App struct {
	server          *http.Server
	opts            *config.Options
	middlewares     []router.Middleware
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	txManager       db.TxManager
	router          router.Router
	validator       validation.Validator
	completer       llm.Completer
	mailer          email.Mailer
	orders          *order.Service
	setup           sync.Once
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	maxBody := a.opts.Server.MaxBodyBytes

	books := book.NewModule(a.db)
	bookSvc := books.Service()

	var notifier order.Notifier
	if a.mailer != nil {
		notifier = order.NewEmailNotifier(a.mailer, a.opts.Email.NotifyTo)
	}
	orders := order.NewModule(a.db, a.txManager, bookSvc, notifier)
	a.orders = orders.Service()

	reviews := review.NewModule(a.db, bookSvc)
	suggester := ai.NewService(bookSvc, a.completer, a.opts.LLM.CatalogLimit)
	carts := cart.NewModule(a.db, a.txManager, bookSvc, a.orders, suggester)

	mountHealthRoutes(a.router)
	mountBookRoutes(a.router, books.Handler(), a.validator, maxBody)
	mountReviewRoutes(a.router, reviews.Handler(), a.validator, maxBody)
	mountOrderRoutes(a.router, orders.Handler(), a.validator, maxBody)
	mountCartRoutes(a.router, carts.Handler(), a.validator, maxBody, a.opts.RateLimit)
}

// Handler returns the fully wired router. Middlewares and routes are
// registered on the first call.
func (a *App) Handler() http.Handler {
	a.setup.Do(func() {
		a.registerMiddlewares()
		a.setupRoutes()
	})
	return a.router
}

func (a *App) Start(ctx context.Context) error {
	a.server.Handler = a.Handler()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

// Shutdown stops accepting requests and lets in-flight ones drain for up to
// the shutdown timeout. Requests still running after that see their context
// cancelled. Pending order notifications are awaited in every case.
func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	defer a.waitNotifications()
	defer a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}

func (a *App) waitNotifications() {
	if a.orders != nil {
		a.orders.Wait()
	}
}

func New(opts *config.Options, dbConn *sql.DB, providers *Providers, middlewares []router.Middleware) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverOpts := opts.Server
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", serverOpts.Port),
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverOpts.ReadTimeout.Duration,
		WriteTimeout: serverOpts.WriteTimeout.Duration,
		IdleTimeout:  serverOpts.IdleTimeout.Duration,
	}

	return &App{
		opts:            opts,
		db:              dbConn,
		txManager:       db.NewSQLTxManager(dbConn),
		router:          providers.Router,
		validator:       providers.Validator,
		completer:       providers.Completer,
		mailer:          providers.Mailer,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverOpts.ShutdownTimeout.Duration,
	}
}
