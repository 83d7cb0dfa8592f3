// Package adminauth serves admin login and admin account registration.
package adminauth

import (
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/module"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/session"
)

// SessionSaver persists the signed-in session under a fresh session id.
type SessionSaver interface {
	Renew(w http.ResponseWriter, r *http.Request, s session.Session) (session.Session, error)
}

// FormRecorder counts form submission results.
type FormRecorder interface {
	ObserveForm(form string, result string)
}

// Option configures an adminauth module.
type Option func(*Module)

// WithGateway sets the admin credential gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithSessions sets the session persistence used after login.
func WithSessions(s SessionSaver) Option {
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

// Module provides the public admin login and registration routes.
type Module struct {
	gateway  Gateway
	sessions SessionSaver
	recorder FormRecorder
	base     modulehandler.Base
}

// New returns an adminauth module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "adminauth" }

// Mount wires the admin auth handlers.
func (m Module) Mount() (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	mux := http.NewServeMux()
	svc := newService(gateway, m.recorder)
	registerRoutes(mux, newHandlers(svc, m.base, m.sessions))
	return module.Mount{Prefix: routepath.AdminPrefix, Handler: mux}, nil
}
