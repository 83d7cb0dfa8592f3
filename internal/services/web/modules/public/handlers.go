package public

import (
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/pagerender"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/sessioncookie"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
	webtemplates "github.com/sanjayconsultancy/visadesk/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	sessions SessionClearer
}

func newHandlers(base modulehandler.Base, sessions SessionClearer) handlers {
	return handlers{Base: base, sessions: sessions}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Body: webtemplates.Home()})
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, hasSession := sessioncookie.Read(r)
	if hasSession && !requestmeta.HasSameOriginProof(r, h.SchemePolicy()) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if h.sessions != nil {
		if err := h.sessions.Clear(w, r); err != nil {
			h.Logger().Error("clear session", "error", err)
		}
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}
