package app

import (
	module "github.com/sanjayconsultancy/visadesk/internal/services/web/module"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequireAuth         httpx.Middleware
	RequestSchemePolicy requestmeta.SchemePolicy
}
