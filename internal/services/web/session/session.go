package session

import (
	"context"
	"strings"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
)

// Fixed store keys.
const (
	KeyToken = "token"
	KeyAdmin = "admin"
)

// Session is the authentication state for one browser.
type Session struct {
	ID    string
	Token string
	Admin *gateway.AdminProfile
}

// LoggedIn reports whether a token is present. The token is never validated
// locally; the backend decides.
func (s Session) LoggedIn() bool {
	return strings.TrimSpace(s.Token) != ""
}

// Store is a per-session string key/value store.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

type contextKey struct{}

// WithSession returns ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session loaded for the current request.
func FromContext(ctx context.Context) (Session, bool) {
	if ctx == nil {
		return Session{}, false
	}
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}

// TokenSource feeds the gateway the token of the session on ctx.
func TokenSource() gateway.TokenSource {
	return func(ctx context.Context) string {
		s, _ := FromContext(ctx)
		return strings.TrimSpace(s.Token)
	}
}
