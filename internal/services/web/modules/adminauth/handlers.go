package adminauth

import (
	"net/http"
	"time"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/pagerender"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/session"
	webtemplates "github.com/sanjayconsultancy/visadesk/internal/services/web/templates"
)

const (
	loginTitle    = "Admin Login"
	registerTitle = "Admin Register"

	loginRedirectDelay = 2 * time.Second
)

type handlers struct {
	modulehandler.Base
	service  service
	sessions SessionSaver
}

func newHandlers(s service, base modulehandler.Base, sessions SessionSaver) handlers {
	return handlers{Base: base, service: s, sessions: sessions}
}

func (h handlers) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, webtemplates.AdminLoginView{})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, webtemplates.AdminLoginView{Error: msgLoginFailed})
		return
	}
	username := r.PostFormValue("username")
	result, fail := h.service.login(httpx.RequestContext(r), username, r.PostFormValue("password"))
	if fail != nil {
		h.renderLogin(w, r, fail.status, webtemplates.AdminLoginView{Error: fail.message, Username: username})
		return
	}
	if h.sessions == nil {
		h.Logger().Error("login succeeded without a session store")
		h.renderLogin(w, r, http.StatusInternalServerError, webtemplates.AdminLoginView{Error: msgLoginFailed, Username: username})
		return
	}
	if _, err := h.sessions.Renew(w, r, session.Session{Token: result.Token, Admin: result.Admin}); err != nil {
		h.Logger().Error("persist login session", "error", err)
		h.renderLogin(w, r, http.StatusInternalServerError, webtemplates.AdminLoginView{Error: msgLoginFailed, Username: username})
		return
	}
	httpx.WriteRedirect(w, r, routepath.AdminDashboard)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, view webtemplates.AdminLoginView) {
	view.FirstTimeHint = h.service.firstTimeHint(httpx.RequestContext(r))
	h.WritePage(w, r, pagerender.Page{
		Title:      loginTitle,
		StatusCode: status,
		Body:       webtemplates.AdminLogin(view),
	})
}

func (h handlers) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, http.StatusOK, webtemplates.AdminRegisterView{}, nil)
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegister(w, r, http.StatusBadRequest, webtemplates.AdminRegisterView{
			FormMessage: webtemplates.FormMessage{Error: msgRegisterFailed},
		}, nil)
		return
	}
	in := registration{
		Username:        r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
	if fail := h.service.register(httpx.RequestContext(r), in); fail != nil {
		h.renderRegister(w, r, fail.status, webtemplates.AdminRegisterView{
			FormMessage: webtemplates.FormMessage{Error: fail.message},
			Username:    in.Username,
			Email:       in.Email,
		}, nil)
		return
	}
	h.renderRegister(w, r, http.StatusOK, webtemplates.AdminRegisterView{
		FormMessage: webtemplates.FormMessage{Success: msgRegistered},
	}, &webtemplates.Refresh{URL: routepath.AdminLogin, Delay: loginRedirectDelay})
}

func (h handlers) renderRegister(w http.ResponseWriter, r *http.Request, status int, view webtemplates.AdminRegisterView, refresh *webtemplates.Refresh) {
	h.WritePage(w, r, pagerender.Page{
		Title:      registerTitle,
		StatusCode: status,
		Body:       webtemplates.AdminRegister(view),
		Refresh:    refresh,
	})
}
