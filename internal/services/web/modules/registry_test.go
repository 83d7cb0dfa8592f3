package modules

import (
	"net/http"
	"testing"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/session"
)

type stubSessions struct {
	hooks []func(string)
}

func (*stubSessions) ID(http.ResponseWriter, *http.Request) string { return "sid" }

func (*stubSessions) Renew(_ http.ResponseWriter, _ *http.Request, s session.Session) (session.Session, error) {
	return s, nil
}

func (*stubSessions) Clear(http.ResponseWriter, *http.Request) error { return nil }

func (s *stubSessions) OnClear(fn func(string)) { s.hooks = append(s.hooks, fn) }

func TestDefaultModulesCoverEveryArea(t *testing.T) {
	t.Parallel()

	public := DefaultPublicModules(Dependencies{})
	protected := DefaultProtectedModules(Dependencies{})

	wantPublic := []string{"public", "applicant", "adminauth"}
	if len(public) != len(wantPublic) {
		t.Fatalf("public module count = %d, want %d", len(public), len(wantPublic))
	}
	for i, want := range wantPublic {
		if got := public[i].ID(); got != want {
			t.Fatalf("public module[%d] id = %q, want %q", i, got, want)
		}
	}
	if len(protected) != 1 || protected[0].ID() != "dashboard" {
		t.Fatalf("protected modules = %v, want [dashboard]", protected)
	}
}

func TestBuildRegistersDashboardDiscardHook(t *testing.T) {
	t.Parallel()

	sessions := &stubSessions{}
	out := NewRegistry().Build(BuildInput{Dependencies: Dependencies{Sessions: sessions}})

	if len(out.Public) != 3 || len(out.Protected) != 1 {
		t.Fatalf("built %d public and %d protected modules", len(out.Public), len(out.Protected))
	}
	if len(sessions.hooks) != 1 {
		t.Fatalf("OnClear hooks = %d, want 1", len(sessions.hooks))
	}
	sessions.hooks[0]("sid")
}

func TestEveryModuleMounts(t *testing.T) {
	t.Parallel()

	out := NewRegistry().Build(BuildInput{})
	for _, m := range append(out.Public, out.Protected...) {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("mount %q: %v", m.ID(), err)
		}
		if mount.Handler == nil {
			t.Fatalf("module %q mounted a nil handler", m.ID())
		}
	}
}
