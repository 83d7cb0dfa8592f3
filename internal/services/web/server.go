package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/sanjayconsultancy/visadesk/internal/platform/timeouts"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/composition"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/metrics"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/observability"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/sessioncookie"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/session"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/static"
	"golang.org/x/sync/errgroup"
)

var subStaticFS = func() (fs.FS, error) {
	return fs.Sub(static.FS, ".")
}

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// APIURL is the backend origin; "/api" is appended by the gateway.
	APIURL     string
	APITimeout time.Duration
	// HTTPClient overrides the client used for backend calls.
	HTTPClient *http.Client

	// SessionStore defaults to an in-memory store.
	SessionStore session.Store
	SessionTTL   time.Duration

	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *slog.Logger
	Metrics             *metrics.Metrics
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *slog.Logger
}

// NewHandler assembles the root handler: process routes, the session
// middleware and the composed feature modules, wrapped in panic recovery,
// request ids and request logging.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.New()
	}
	store := cfg.SessionStore
	if store == nil {
		store = session.NewMemoryStore()
	}

	sessions := session.NewManager(store, sessioncookie.Options{
		Scheme: cfg.RequestSchemePolicy,
		MaxAge: cfg.SessionTTL,
	}, logger)

	client, err := gateway.New(gateway.Config{
		BaseURL:    cfg.APIURL,
		Timeout:    cfg.APITimeout,
		HTTPClient: cfg.HTTPClient,
		Tokens:     session.TokenSource(),
		Logger:     logger,
		Recorder:   recorder,
	})
	if err != nil {
		return nil, fmt.Errorf("build gateway: %w", err)
	}

	app, err := composition.ComposeAppHandler(composition.ComposeInput{
		ModuleDependencies: modules.Dependencies{
			Gateway:  client,
			Sessions: sessions,
			Recorder: recorder,
			Base:     modulehandler.NewBase(cfg.RequestSchemePolicy, logger),
		},
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	staticFS, err := subStaticFS()
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /up", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", recorder.Handler())
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	mux.Handle("/", sessions.Middleware()(app))

	return httpx.Chain(mux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger, recorder),
	), nil
}

// NewServer builds the HTTP server without binding its address.
func NewServer(cfg Config) (*Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logger,
	}, nil
}

// ListenAndServe runs the HTTP server until ctx ends.
//
// On cancellation it performs a bounded shutdown so in-flight requests are
// drained before the listener closes.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("web listening", "addr", s.httpAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})
	return group.Wait()
}

// Close stops the listener immediately.
func (s *Server) Close() error {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}
