// Package dashboard serves the admin applicant search dashboard.
//
// Every route sits behind the session token guard. Search results and the
// selected applicant live in a per-session board held in memory.
package dashboard

import (
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/module"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
)

// SearchTracker observes searches waiting on the backend.
type SearchTracker interface {
	SearchStarted() func()
}

// Option configures a dashboard module.
type Option func(*Module)

// WithGateway sets the applicant read gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithSearchTracker sets the in-flight search tracker.
func WithSearchTracker(t SearchTracker) Option {
	return func(m *Module) { m.tracker = t }
}

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides the protected dashboard routes.
type Module struct {
	gateway Gateway
	tracker SearchTracker
	base    modulehandler.Base
	boards  *boards
}

// New returns a dashboard module configured by the given options.
func New(opts ...Option) Module {
	m := Module{boards: newBoards()}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// DiscardSession drops the dashboard state held for sessionID.
func (m Module) DiscardSession(sessionID string) {
	if m.boards != nil {
		m.boards.discard(sessionID)
	}
}

// Mount wires the dashboard handlers.
func (m Module) Mount() (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	boards := m.boards
	if boards == nil {
		boards = newBoards()
	}
	mux := http.NewServeMux()
	svc := newService(gateway, m.tracker)
	registerRoutes(mux, newHandlers(svc, m.base, boards))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
