// Package modules defines web module registry helpers.
package modules

import (
	"net/http"

	module "github.com/sanjayconsultancy/visadesk/internal/services/web/module"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules/adminauth"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules/applicant"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules/dashboard"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/session"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Gateway is the union of the backend operations the modules consume. Each
// module receives it typed as its own narrow interface.
type Gateway interface {
	applicant.Gateway
	adminauth.Gateway
	dashboard.Gateway
}

// Sessions is the session manager surface the modules consume.
type Sessions interface {
	ID(w http.ResponseWriter, r *http.Request) string
	Renew(w http.ResponseWriter, r *http.Request, s session.Session) (session.Session, error)
	Clear(w http.ResponseWriter, r *http.Request) error
	OnClear(fn func(sessionID string))
}

// Recorder receives module-level metrics.
type Recorder interface {
	applicant.FormRecorder
	dashboard.SearchTracker
}

// Dependencies carries the shared collaborators required to compose the web
// module registry.
type Dependencies struct {
	Gateway  Gateway
	Sessions Sessions
	Recorder Recorder
	Base     modulehandler.Base
}
