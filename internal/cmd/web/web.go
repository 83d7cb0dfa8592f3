// Package web parses configuration for and runs the browser-facing service.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	entrypoint "github.com/sanjayconsultancy/visadesk/internal/platform/cmd"
	"github.com/sanjayconsultancy/visadesk/internal/platform/config"
	"github.com/sanjayconsultancy/visadesk/internal/platform/logging"
	"github.com/sanjayconsultancy/visadesk/internal/platform/otel"
	"github.com/sanjayconsultancy/visadesk/internal/services/web"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/session"
	redisstore "github.com/sanjayconsultancy/visadesk/internal/services/web/storage/redis"
	sqlitestore "github.com/sanjayconsultancy/visadesk/internal/services/web/storage/sqlite"
)

// DefaultAPIURL is used when no backend origin is configured.
const DefaultAPIURL = "http://localhost:5000"

// Session store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr   string        `env:"VISADESK_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	APIURL     string        `env:"VISADESK_API_URL"`
	APITimeout time.Duration `env:"VISADESK_API_TIMEOUT" envDefault:"10s"`

	SessionBackend string        `env:"VISADESK_WEB_SESSION_BACKEND" envDefault:"sqlite"`
	SessionDBPath  string        `env:"VISADESK_WEB_SESSION_DB_PATH" envDefault:"data/web-sessions.db"`
	RedisAddr      string        `env:"VISADESK_WEB_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string        `env:"VISADESK_WEB_REDIS_PASSWORD"`
	SessionTTL     time.Duration `env:"VISADESK_WEB_SESSION_TTL" envDefault:"168h"`

	TrustForwardedProto bool   `env:"VISADESK_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LogLevel            string `env:"VISADESK_LOG_LEVEL" envDefault:"info"`

	Telemetry otel.Config
}

// ParseConfig loads .env files, then the environment, then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Backend API origin")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Backend request timeout")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "Session store: sqlite, redis or memory")
	fs.StringVar(&cfg.SessionDBPath, "session-db-path", cfg.SessionDBPath, "SQLite session database path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the redis session backend")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	switch cfg.SessionBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config, stderr io.Writer) error {
	logger := logging.New(stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{
		Telemetry: cfg.Telemetry,
		Logger:    logger,
	}, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger *slog.Logger) error {
	apiURL := ResolveAPIURL(cfg.APIURL, logger)

	store, closeStore, err := OpenSessionStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("close session store", "error", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		APIURL:              apiURL,
		APITimeout:          cfg.APITimeout,
		SessionStore:        store,
		SessionTTL:          cfg.SessionTTL,
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:              logger,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// ResolveAPIURL returns raw trimmed, or DefaultAPIURL with a warning when
// raw is empty.
func ResolveAPIURL(raw string, logger *slog.Logger) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		return raw
	}
	if logger != nil {
		logger.Warn("VISADESK_API_URL is not set, using default", "api_url", DefaultAPIURL)
	}
	return DefaultAPIURL
}

// OpenSessionStore opens the configured session backend. The returned func
// releases it.
func OpenSessionStore(ctx context.Context, cfg Config) (session.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.SessionBackend {
	case BackendMemory:
		return session.NewMemoryStore(), noop, nil
	case BackendRedis:
		store, err := redisstore.Open(ctx, redisstore.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			TTL:      cfg.SessionTTL,
		})
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	case BackendSQLite, "":
		store, err := sqlitestore.Open(cfg.SessionDBPath, cfg.SessionTTL)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		return nil, noop, errors.New("unknown session backend " + cfg.SessionBackend)
	}
}

// Main is the process entrypoint used by cmd/web.
func Main(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "parse config: %v\n", err)
		return 2
	}
	if err := Run(ctx, cfg, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "web: %v\n", err)
		return 1
	}
	return 0
}
