package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		Root:           "/",
		Register:       "/register",
		Logout:         "/logout",
		Health:         "/up",
		AdminLogin:     "/admin/login",
		AdminRegister:  "/admin/register",
		AdminDashboard: "/admin/dashboard",
	}
	for got, want := range tests {
		if got != want {
			t.Fatalf("route = %q, want %q", got, want)
		}
	}
}

func TestDashboardUserPathsEscapeIDs(t *testing.T) {
	t.Parallel()

	if got := DashboardUser("64b7f0c2a1b2c3d4e5f60718"); got != "/admin/dashboard/users/64b7f0c2a1b2c3d4e5f60718" {
		t.Fatalf("DashboardUser() = %q", got)
	}
	if got := DashboardUserCV("a/b"); got != "/admin/dashboard/users/a%2Fb/cv" {
		t.Fatalf("DashboardUserCV() = %q", got)
	}
}
