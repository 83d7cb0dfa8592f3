package adminauth

import (
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminLogin, h.handleLoginForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminLogin, h.handleLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminRegister, h.handleRegisterForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminRegister, h.handleRegister)
	mux.HandleFunc(http.MethodGet+" /admin", h.RedirectHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrefix+"{rest...}", h.RedirectHome)
}
