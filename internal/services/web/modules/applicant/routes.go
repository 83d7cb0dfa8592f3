package applicant

import (
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Register, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.Register, h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.Register+"/{rest...}", h.RedirectHome)
}
