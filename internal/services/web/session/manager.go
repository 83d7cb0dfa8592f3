package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/sessioncookie"
)

// Manager binds the session cookie to a Store.
type Manager struct {
	store  Store
	cookie sessioncookie.Options
	logger *slog.Logger

	mu      sync.RWMutex
	onClear []func(sessionID string)
}

// NewManager returns a Manager over store.
func NewManager(store Store, cookie sessioncookie.Options, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: store, cookie: cookie, logger: logger}
}

// OnClear registers fn to run with the session id after Clear.
func (m *Manager) OnClear(fn func(sessionID string)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.onClear = append(m.onClear, fn)
	m.mu.Unlock()
}

// Load reads the session referenced by the request cookie. A request without
// a cookie yields an empty Session and no error.
func (m *Manager) Load(r *http.Request) (Session, error) {
	sid, ok := sessioncookie.Read(r)
	if !ok {
		return Session{}, nil
	}
	ctx := httpx.RequestContext(r)
	s := Session{ID: sid}

	token, _, err := m.store.Get(ctx, sid, KeyToken)
	if err != nil {
		return s, fmt.Errorf("load session token: %w", err)
	}
	s.Token = token

	rawAdmin, found, err := m.store.Get(ctx, sid, KeyAdmin)
	if err != nil {
		return s, fmt.Errorf("load session admin: %w", err)
	}
	if found && strings.TrimSpace(rawAdmin) != "" {
		var admin gateway.AdminProfile
		if err := json.Unmarshal([]byte(rawAdmin), &admin); err != nil {
			m.logger.Warn("discarding unreadable admin profile", "session_id", sid, "error", err)
		} else {
			s.Admin = &admin
		}
	}
	return s, nil
}

// Save persists s, issuing a session cookie when the browser has none. The
// admin key is removed when s.Admin is nil.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, s Session) (Session, error) {
	if s.ID == "" {
		s.ID = m.ID(w, r)
	}
	ctx := httpx.RequestContext(r)
	if err := m.store.Set(ctx, s.ID, KeyToken, s.Token); err != nil {
		return s, fmt.Errorf("save session token: %w", err)
	}
	if s.Admin == nil {
		if err := m.store.Delete(ctx, s.ID, KeyAdmin); err != nil {
			return s, fmt.Errorf("clear session admin: %w", err)
		}
		return s, nil
	}
	encoded, err := json.Marshal(s.Admin)
	if err != nil {
		return s, fmt.Errorf("encode session admin: %w", err)
	}
	if err := m.store.Set(ctx, s.ID, KeyAdmin, string(encoded)); err != nil {
		return s, fmt.Errorf("save session admin: %w", err)
	}
	return s, nil
}

// Renew persists s under a freshly issued session id. Keys held by the
// browser's previous session are removed and its OnClear hooks run, so an id
// known before sign-in never carries the token.
func (m *Manager) Renew(w http.ResponseWriter, r *http.Request, s Session) (Session, error) {
	if old, ok := sessioncookie.Read(r); ok {
		if err := m.store.Delete(httpx.RequestContext(r), old, KeyToken, KeyAdmin); err != nil {
			return s, fmt.Errorf("retire session: %w", err)
		}
		m.runOnClear(old)
	}
	s.ID = uuid.NewString()
	sessioncookie.Write(w, r, s.ID, m.cookie)
	return m.Save(w, r, s)
}

// ID returns the browser's session id, issuing a fresh cookie when absent.
func (m *Manager) ID(w http.ResponseWriter, r *http.Request) string {
	if sid, ok := sessioncookie.Read(r); ok {
		return sid
	}
	sid := uuid.NewString()
	sessioncookie.Write(w, r, sid, m.cookie)
	return sid
}

// Clear removes both session keys, expires the cookie and runs OnClear hooks.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sid, ok := sessioncookie.Read(r)
	sessioncookie.Clear(w, r, m.cookie)
	if !ok {
		return nil
	}
	if err := m.store.Delete(httpx.RequestContext(r), sid, KeyToken, KeyAdmin); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.runOnClear(sid)
	return nil
}

func (m *Manager) runOnClear(sid string) {
	m.mu.RLock()
	hooks := append([]func(string){}, m.onClear...)
	m.mu.RUnlock()
	for _, hook := range hooks {
		hook(sid)
	}
}

// Middleware loads the session once per request and stores it on the context.
// Store failures are logged and the request proceeds logged out.
func (m *Manager) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := m.Load(r)
			if err != nil {
				m.logger.Error("load session", "path", r.URL.Path, "error", err)
				s = Session{ID: s.ID}
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// RequireToken redirects requests without a session token to loginPath.
func RequireToken(loginPath string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, _ := FromContext(r.Context())
			if !s.LoggedIn() {
				httpx.WriteRedirect(w, r, loginPath)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
