// Package applicant serves the public applicant self-registration form.
package applicant

import (
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/module"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/inflight"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
)

// SessionIdentifier returns the browser session id, issuing one when absent.
type SessionIdentifier interface {
	ID(w http.ResponseWriter, r *http.Request) string
}

// FormRecorder counts form submission results.
type FormRecorder interface {
	ObserveForm(form string, result string)
}

// Option configures an applicant module.
type Option func(*Module)

// WithGateway sets the registration gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithSessions sets the browser session identifier source.
func WithSessions(s SessionIdentifier) Option {
	return func(m *Module) { m.sessions = s }
}

// WithRecorder sets the form submission recorder.
func WithRecorder(r FormRecorder) Option {
	return func(m *Module) { m.recorder = r }
}

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides the applicant registration routes.
type Module struct {
	gateway  Gateway
	sessions SessionIdentifier
	recorder FormRecorder
	base     modulehandler.Base
	guard    *inflight.Guard
}

// New returns an applicant module configured by the given options.
func New(opts ...Option) Module {
	m := Module{guard: &inflight.Guard{}}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "applicant" }

// Mount wires the registration handlers.
func (m Module) Mount() (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	guard := m.guard
	if guard == nil {
		guard = &inflight.Guard{}
	}
	mux := http.NewServeMux()
	svc := newService(gateway, guard, m.recorder)
	registerRoutes(mux, newHandlers(svc, m.base, m.sessions))
	return module.Mount{Prefix: routepath.Register + "/", Handler: mux}, nil
}
