package modules

import (
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules/adminauth"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules/applicant"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules/dashboard"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules/public"
)

// BuildInput carries everything the registry needs to build module sets.
type BuildInput struct {
	Dependencies Dependencies
}

// BuildOutput holds the public and protected module groups.
type BuildOutput struct {
	Public    []Module
	Protected []Module
}

// Registry builds the default module sets.
type Registry struct{}

// NewRegistry returns the default module registry.
func NewRegistry() Registry {
	return Registry{}
}

// Build returns the public and protected modules. The dashboard's per-session
// state is dropped whenever a session is cleared.
func (Registry) Build(input BuildInput) BuildOutput {
	deps := input.Dependencies
	board := newDashboard(deps)
	if deps.Sessions != nil {
		deps.Sessions.OnClear(board.DiscardSession)
	}
	return BuildOutput{
		Public:    DefaultPublicModules(deps),
		Protected: []Module{board},
	}
}

// DefaultPublicModules returns the unauthenticated web modules.
func DefaultPublicModules(deps Dependencies) []Module {
	publicOpts := []public.Option{public.WithBase(deps.Base)}
	applicantOpts := []applicant.Option{applicant.WithBase(deps.Base)}
	adminOpts := []adminauth.Option{adminauth.WithBase(deps.Base)}
	if deps.Sessions != nil {
		publicOpts = append(publicOpts, public.WithSessions(deps.Sessions))
		applicantOpts = append(applicantOpts, applicant.WithSessions(deps.Sessions))
		adminOpts = append(adminOpts, adminauth.WithSessions(deps.Sessions))
	}
	if deps.Gateway != nil {
		applicantOpts = append(applicantOpts, applicant.WithGateway(deps.Gateway))
		adminOpts = append(adminOpts, adminauth.WithGateway(deps.Gateway))
	}
	if deps.Recorder != nil {
		applicantOpts = append(applicantOpts, applicant.WithRecorder(deps.Recorder))
		adminOpts = append(adminOpts, adminauth.WithRecorder(deps.Recorder))
	}
	return []Module{
		public.New(publicOpts...),
		applicant.New(applicantOpts...),
		adminauth.New(adminOpts...),
	}
}

// DefaultProtectedModules returns the modules that require an admin token.
func DefaultProtectedModules(deps Dependencies) []Module {
	return []Module{newDashboard(deps)}
}

func newDashboard(deps Dependencies) dashboard.Module {
	opts := []dashboard.Option{dashboard.WithBase(deps.Base)}
	if deps.Gateway != nil {
		opts = append(opts, dashboard.WithGateway(deps.Gateway))
	}
	if deps.Recorder != nil {
		opts = append(opts, dashboard.WithSearchTracker(deps.Recorder))
	}
	return dashboard.New(opts...)
}
