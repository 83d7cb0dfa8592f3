// Package composition assembles the module registry and the root mux.
package composition

import (
	"net/http"

	webapp "github.com/sanjayconsultancy/visadesk/internal/services/web/app"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
)

// ModuleRegistry builds web module sets from composition input.
type ModuleRegistry interface {
	Build(modules.BuildInput) modules.BuildOutput
}

// ComposeInput describes the contracts needed to compose the application mux.
type ComposeInput struct {
	ModuleDependencies modules.Dependencies

	// RequireAuth overrides the default admin token guard.
	RequireAuth         httpx.Middleware
	RequestSchemePolicy requestmeta.SchemePolicy

	Registry ModuleRegistry
}

// ComposeAppHandler builds the web app handler with selected module sets.
func ComposeAppHandler(input ComposeInput) (http.Handler, error) {
	registry := input.Registry
	if registry == nil {
		registry = modules.NewRegistry()
	}

	built := registry.Build(modules.BuildInput{Dependencies: input.ModuleDependencies})

	return webapp.BuildRootHandler(webapp.Config{
		RequireAuth:         input.RequireAuth,
		PublicModules:       built.Public,
		ProtectedModules:    built.Protected,
		RequestSchemePolicy: input.RequestSchemePolicy,
	})
}
