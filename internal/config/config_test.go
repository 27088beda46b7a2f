package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/bookstore/internal/config"
	"github.com/google/go-cmp/cmp"
)

const testConfig = `{
  "app": {"env": "development", "log_level": "debug"},
  "server": {"port": 8888, "read_timeout": "10s", "max_body_bytes": 2048},
  "db": {"driver": "sqlite", "path": "bookstore.db", "ping_timeout": "5s"},
  "llm": {
    "base_url": "https://api.groq.com/openai/v1/",
    "model": "meta-llama/llama-4-scout-17b-16e-instruct",
    "timeout": "30s",
    "breaker": {"failure_threshold": 3, "timeout": "1m"}
  },
  "cors": {"allowed_origins": ["*"]},
  "rate_limit": {"requests": 5, "window": "1m"},
  "email": {"templates": "web/templates", "layout": "layout.html", "notify_to": ["sales@example.com"]}
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	path := writeConfig(t, testConfig)

	t.Setenv("PORT", "9999")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("NOTIFY_TO", "a@example.com, b@example.com")

	opts, err := config.New(path)
	if err != nil {
		t.Fatalf("config.New(%q) = %v, want: %v", path, err, nil)
	}

	if got, want := opts.Server.Port, 9999; got != want {
		t.Errorf("opts.Server.Port = %d, want: %d", got, want)
	}

	if got, want := opts.Server.ReadTimeout.Duration, 10*time.Second; got != want {
		t.Errorf("opts.Server.ReadTimeout = %v, want: %v", got, want)
	}

	if got, want := opts.LLM.APIKey, "gsk_test"; got != want {
		t.Errorf("opts.LLM.APIKey = %q, want: %q", got, want)
	}

	if got, want := opts.LLM.Temperature, 0.7; got != want {
		t.Errorf("opts.LLM.Temperature = %v, want: %v", got, want)
	}

	if got, want := opts.LLM.CatalogLimit, 30; got != want {
		t.Errorf("opts.LLM.CatalogLimit = %d, want: %d", got, want)
	}

	if got, want := opts.LLM.Breaker.FailureThreshold, uint32(3); got != want {
		t.Errorf("opts.LLM.Breaker.FailureThreshold = %d, want: %d", got, want)
	}

	if got, want := opts.DB.Host, "localhost"; got != want {
		t.Errorf("opts.DB.Host = %q, want: %q", got, want)
	}

	if diff := cmp.Diff([]string{"a@example.com", "b@example.com"}, opts.Email.NotifyTo); diff != "" {
		t.Errorf("opts.Email.NotifyTo mismatch (-want +got):\n%s", diff)
	}

	if opts.Email.SMTP == nil || opts.Email.SMTP.Port != 2525 {
		t.Errorf("opts.Email.SMTP = %+v, want port 2525", opts.Email.SMTP)
	}

	if !opts.Email.Enabled() {
		t.Error("opts.Email.Enabled() = false, want: true")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{"Malformed json", `{"server": `, nil},
		{"Bad duration", `{"server": {"read_timeout": "soon"}}`, nil},
		{"Bad port", `{}`, map[string]string{"PORT": "eighty"}},
		{"Bad smtp port", `{}`, map[string]string{"SMTP_HOST": "smtp.example.com", "SMTP_PORT": "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := writeConfig(t, tt.content)
			if _, err := config.New(path); err == nil {
				t.Errorf("config.New(%q) = nil, want an error", path)
			}
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := config.New("does-not-exist.json"); err == nil {
		t.Error("config.New() = nil, want an error")
	}
}

func TestEmailOptions_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts config.EmailOptions
		want bool
	}{
		{"No smtp", config.EmailOptions{NotifyTo: []string{"a@example.com"}}, false},
		{"No recipients", config.EmailOptions{SMTP: &config.SMTPOptions{Host: "smtp"}}, false},
		{"Configured", config.EmailOptions{SMTP: &config.SMTPOptions{Host: "smtp"}, NotifyTo: []string{"a@example.com"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.opts.Enabled(); got != tt.want {
				t.Errorf("opts.Enabled() = %v, want: %v", got, tt.want)
			}
		})
	}
}
