// Package public serves the landing page, logout and the catch-all redirect.
package public

import (
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/module"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
)

// SessionClearer ends the browser's admin session.
type SessionClearer interface {
	Clear(w http.ResponseWriter, r *http.Request) error
}

// Option configures a public module.
type Option func(*Module)

// WithSessions sets the session clearer used by logout.
func WithSessions(s SessionClearer) Option {
	return func(m *Module) { m.sessions = s }
}

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides unauthenticated root routes.
type Module struct {
	sessions SessionClearer
	base     modulehandler.Base
}

// New returns a public module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires the public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base, m.sessions))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
