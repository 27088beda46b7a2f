package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	timex "github.com/ferdiebergado/bookstore/internal/pkg/time"
)

const masked = "*****"

type AppOptions struct {
	Env      string `json:"env,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}

type ServerOptions struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DBOptions struct {
	Driver          string         `json:"driver,omitempty"`
	Path            string         `json:"path,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`

	Host     string `json:"-"`
	Port     string `json:"-"`
	User     string `json:"-"`
	Password string `json:"-"`
	Name     string `json:"-"`
	SSLMode  string `json:"-"`
}

func (o *DBOptions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", o.Driver),
		slog.String("path", o.Path),
		slog.String("host", o.Host),
		slog.String("name", o.Name),
		slog.String("user", o.User),
		slog.String("password", masked),
		slog.Int("max_open_conns", o.MaxOpenConns),
	)
}

type BreakerOptions struct {
	MaxRequests      uint32         `json:"max_requests,omitempty"`
	Interval         timex.Duration `json:"interval,omitempty"`
	Timeout          timex.Duration `json:"timeout,omitempty"`
	FailureThreshold uint32         `json:"failure_threshold,omitempty"`
}

type LLMOptions struct {
	BaseURL      string          `json:"base_url,omitempty"`
	Model        string          `json:"model,omitempty"`
	Temperature  float64         `json:"temperature,omitempty"`
	Timeout      timex.Duration  `json:"timeout,omitempty"`
	CatalogLimit int             `json:"catalog_limit,omitempty"`
	Breaker      *BreakerOptions `json:"breaker,omitempty"`

	APIKey string `json:"-"`
}

func (o *LLMOptions) LogValue() slog.Value {
	key := ""
	if o.APIKey != "" {
		key = masked
	}

	return slog.GroupValue(
		slog.String("base_url", o.BaseURL),
		slog.String("model", o.Model),
		slog.Float64("temperature", o.Temperature),
		slog.Duration("timeout", o.Timeout.Duration),
		slog.Int("catalog_limit", o.CatalogLimit),
		slog.String("api_key", key),
	)
}

type CORSOptions struct {
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
	AllowedMethods []string `json:"allowed_methods,omitempty"`
	AllowedHeaders []string `json:"allowed_headers,omitempty"`
	ExposedHeaders []string `json:"exposed_headers,omitempty"`
	MaxAge         int      `json:"max_age,omitempty"`
}

type RateLimitOptions struct {
	Requests int            `json:"requests,omitempty"`
	Window   timex.Duration `json:"window,omitempty"`
}

type SMTPOptions struct {
	Host     string
	Port     int
	User     string
	Password string
}

type EmailOptions struct {
	Templates string   `json:"templates,omitempty"`
	Layout    string   `json:"layout,omitempty"`
	Sender    string   `json:"sender,omitempty"`
	NotifyTo  []string `json:"notify_to,omitempty"`

	SMTP *SMTPOptions `json:"-"`
}

// Enabled reports whether order notifications can be delivered.
func (o *EmailOptions) Enabled() bool {
	return o.SMTP != nil && o.SMTP.Host != "" && len(o.NotifyTo) > 0
}

func (o *EmailOptions) LogValue() slog.Value {
	smtpHost := ""
	if o.SMTP != nil {
		smtpHost = o.SMTP.Host
	}

	return slog.GroupValue(
		slog.String("templates", o.Templates),
		slog.String("sender", o.Sender),
		slog.Any("notify_to", o.NotifyTo),
		slog.String("smtp_host", smtpHost),
	)
}

type Options struct {
	App       *AppOptions       `json:"app,omitempty"`
	Server    *ServerOptions    `json:"server,omitempty"`
	DB        *DBOptions        `json:"db,omitempty"`
	LLM       *LLMOptions       `json:"llm,omitempty"`
	CORS      *CORSOptions      `json:"cors,omitempty"`
	RateLimit *RateLimitOptions `json:"rate_limit,omitempty"`
	Email     *EmailOptions     `json:"email,omitempty"`
}

func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", o.App),
		slog.Any("server", o.Server),
		slog.Any("db", o.DB),
		slog.Any("llm", o.LLM),
		slog.Any("cors", o.CORS),
		slog.Any("rate_limit", o.RateLimit),
		slog.Any("email", o.Email),
	)
}

func New(cfgFile string) (*Options, error) {
	slog.Info("Loading config...")
	opts, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(opts); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", opts))
	return opts, nil
}

func parseCfgFile(cfgFile string) (*Options, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	opts := defaults()
	if err := json.Unmarshal(configFile, opts); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return opts, nil
}

func defaults() *Options {
	return &Options{
		App:       &AppOptions{Env: "development", LogLevel: "info"},
		Server:    &ServerOptions{Port: 3000, MaxBodyBytes: 1 << 20},
		DB:        &DBOptions{Driver: "pgx"},
		LLM:       &LLMOptions{Temperature: 0.7, CatalogLimit: 30, Breaker: &BreakerOptions{}},
		CORS:      &CORSOptions{},
		RateLimit: &RateLimitOptions{},
		Email:     &EmailOptions{},
	}
}

func overrideWithEnv(opts *Options) error {
	if appEnv, ok := os.LookupEnv("ENV"); ok {
		opts.App.Env = appEnv
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		opts.App.LogLevel = level
	}

	if url, ok := os.LookupEnv("URL"); ok {
		opts.Server.URL = url
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", portStr, err)
		}
		opts.Server.Port = port
	}

	if driver, ok := os.LookupEnv("DB_DRIVER"); ok {
		opts.DB.Driver = driver
	}

	if path, ok := os.LookupEnv("DB_PATH"); ok {
		opts.DB.Path = path
	}

	opts.DB.Host = os.Getenv("DB_HOST")
	opts.DB.Port = os.Getenv("DB_PORT")
	opts.DB.User = os.Getenv("DB_USER")
	opts.DB.Password = os.Getenv("DB_PASS")
	opts.DB.Name = os.Getenv("DB_NAME")
	opts.DB.SSLMode = os.Getenv("DB_SSLMODE")

	opts.LLM.APIKey = os.Getenv("LLM_API_KEY")
	if opts.LLM.APIKey == "" {
		opts.LLM.APIKey = os.Getenv("GROQ_API_KEY")
	}

	if base, ok := os.LookupEnv("LLM_BASE_URL"); ok {
		opts.LLM.BaseURL = base
	}

	if origins, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		opts.CORS.AllowedOrigins = splitList(origins)
	}

	if to, ok := os.LookupEnv("NOTIFY_TO"); ok {
		opts.Email.NotifyTo = splitList(to)
	}

	if host, ok := os.LookupEnv("SMTP_HOST"); ok {
		smtpCfg := &SMTPOptions{
			Host:     host,
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
		}

		portStr := os.Getenv("SMTP_PORT")
		if portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return fmt.Errorf("parse SMTP_PORT %q: %w", portStr, err)
			}
			smtpCfg.Port = port
		}

		opts.Email.SMTP = smtpCfg
	}

	return nil
}

func splitList(s string) []string {
	var list []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}
