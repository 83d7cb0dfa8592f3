// Package modulehandler provides the handler base every web module embeds.
//
// It carries the request scheme policy and logger so modules render pages,
// error pages and redirects the same way.
package modulehandler

import (
	"log/slog"
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/pagerender"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/weberror"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
)

// Base carries shared rendering dependencies.
type Base struct {
	policy requestmeta.SchemePolicy
	logger *slog.Logger
}

// NewBase builds a handler base.
func NewBase(policy requestmeta.SchemePolicy, logger *slog.Logger) Base {
	if logger == nil {
		logger = slog.Default()
	}
	return Base{policy: policy, logger: logger}
}

// SchemePolicy returns the request scheme policy for cookie writes.
func (b Base) SchemePolicy() requestmeta.SchemePolicy {
	return b.policy
}

// Logger returns the module logger.
func (b Base) Logger() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}
	return b.logger
}

// WritePage renders a full page, falling back to an error page on failure.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.Write(w, r, page, b.policy); err != nil {
		b.Logger().Error("render page", "path", r.URL.Path, "error", err)
		b.WriteError(w, r, err)
	}
}

// WriteError renders err as an error page.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.Write(w, r, err, b.policy)
}

// WriteNotFound renders a 404 page with message.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request, message string) {
	weberror.WriteStatus(w, r, http.StatusNotFound, message, b.policy)
}

// RedirectHome sends unknown paths back to the landing page.
func (b Base) RedirectHome(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Root)
}
