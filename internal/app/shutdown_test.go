package app_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ferdiebergado/bookstore/internal/app"
	"github.com/ferdiebergado/bookstore/internal/config"
	timex "github.com/ferdiebergado/bookstore/internal/pkg/time"
	"github.com/ferdiebergado/bookstore/internal/pkg/web"
	"github.com/ferdiebergado/bookstore/internal/platform/db"
	"github.com/ferdiebergado/bookstore/internal/platform/email"
	"github.com/ferdiebergado/bookstore/internal/platform/llm"
	"github.com/ferdiebergado/bookstore/internal/platform/router"
	"github.com/ferdiebergado/bookstore/internal/platform/validation"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		t.Fatalf("release port: %v", err)
	}
	return port
}

// serve starts the app on a free port and returns it with its address once
// it accepts connections.
func serve(t *testing.T, opts *config.Options, providers *app.Providers) (*app.App, string) {
	t.Helper()

	opts.Server.Port = freePort(t)
	addr := fmt.Sprintf("127.0.0.1:%d", opts.Server.Port)

	a := app.New(opts, db.NewTestDB(t), providers, app.Middlewares(opts))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		if err := a.Start(ctx); err != nil {
			t.Errorf("a.Start() = %v", err)
		}
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			_ = conn.Close()
			return a, addr
		}
		if time.Now().After(deadline) {
			t.Fatalf("server at %s did not start: %v", addr, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestApp_Shutdown_DrainsInFlightRequests(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	completer := &llm.StubCompleter{CompleteFunc: func(ctx context.Context, _ llm.Prompt) (string, error) {
		once.Do(func() { close(entered) })
		<-release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "[1]", nil
	}}

	opts := testOptions()
	opts.Server.ShutdownTimeout = timex.Duration{Duration: 5 * time.Second}
	a, addr := serve(t, opts, &app.Providers{
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
		Completer: completer,
	})

	c := &client{t: t, handler: a.Handler()}
	c.expect(http.MethodPost, "/books", hobbit, http.StatusCreated)

	httpClient := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	statusCh := make(chan int, 1)
	go func() {
		res, err := httpClient.Post("http://"+addr+"/cart/suggestion", web.MimeJSON, strings.NewReader(`{"text":"fantasia"}`))
		if err != nil {
			t.Errorf("POST /cart/suggestion: %v", err)
			statusCh <- 0
			return
		}
		defer res.Body.Close()
		statusCh <- res.StatusCode
	}()

	<-entered

	shutdownErr := make(chan error, 1)
	go func() { shutdownErr <- a.Shutdown() }()

	// let the shutdown begin while the suggestion is still running
	time.Sleep(50 * time.Millisecond)
	close(release)

	if status := <-statusCh; status != http.StatusOK {
		t.Errorf("in-flight POST /cart/suggestion = %d, want: %d", status, http.StatusOK)
	}

	if err := <-shutdownErr; err != nil {
		t.Errorf("a.Shutdown() = %v, want: nil", err)
	}
}

func TestApp_Shutdown_WaitsForNotificationsOnTimeout(t *testing.T) {
	t.Parallel()

	sending := make(chan struct{})
	release := make(chan struct{})
	var sent atomic.Bool

	mailer := &email.StubMailer{SendHTMLFunc: func([]string, string, string, any) error {
		close(sending)
		<-release
		sent.Store(true)
		return nil
	}}

	opts := testOptions()
	opts.Server.ShutdownTimeout = timex.Duration{Duration: 20 * time.Millisecond}
	opts.Email.NotifyTo = []string{"orders@bookstore.local"}
	a, addr := serve(t, opts, &app.Providers{
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
		Completer: &llm.StubCompleter{},
		Mailer:    mailer,
	})

	c := &client{t: t, handler: a.Handler()}
	id := dataID(t, c.expect(http.MethodPost, "/books", hobbit, http.StatusCreated))
	c.expect(http.MethodPost, "/orders", fmt.Sprintf(`{"items":[{"book_id":%d,"quantity":1}]}`, id), http.StatusCreated)
	<-sending

	// an open connection that never sends a request keeps the server from
	// going quiet, so Shutdown runs into its timeout.
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	time.Sleep(50 * time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- a.Shutdown() }()

	select {
	case err := <-done:
		t.Fatalf("a.Shutdown() = %v before the pending notification was sent", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)

	if err := <-done; !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("a.Shutdown() = %v, want: %v", err, context.DeadlineExceeded)
	}

	if !sent.Load() {
		t.Error("order notification was not sent before Shutdown returned")
	}
}
