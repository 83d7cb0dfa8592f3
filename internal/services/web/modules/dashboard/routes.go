package dashboard

import (
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminDashboard, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.DashboardSearch, h.handleSearch)
	mux.HandleFunc(http.MethodPost+" "+routepath.DashboardAll, h.handleAll)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardUserPattern, h.handleUser)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardUserCVPattern, h.handleCV)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{rest...}", h.RedirectHome)
}
