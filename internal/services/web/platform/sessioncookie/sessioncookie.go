// Package sessioncookie centralizes the browser session cookie.
//
// The cookie carries only an opaque session id; the bearer token and admin
// profile it points to live in the server-side session store.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
)

// Name is the canonical session cookie name.
const Name = "visadesk_session"

// Options shapes the issued cookie.
type Options struct {
	Scheme requestmeta.SchemePolicy
	// MaxAge bounds the cookie lifetime; zero issues a browser-session cookie.
	MaxAge time.Duration
}

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, sessionID string, opts Options) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, opts.Scheme),
		SameSite: http.SameSiteLaxMode,
	}
	if opts.MaxAge > 0 {
		cookie.MaxAge = int(opts.MaxAge / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie for the current request context.
func Clear(w http.ResponseWriter, r *http.Request, opts Options) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, opts.Scheme),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
