// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "net/url"

const (
	Root     = "/"
	Register = "/register"
	Logout   = "/logout"
	Health   = "/up"
	Metrics  = "/metrics"
	Static   = "/static/"

	AdminPrefix   = "/admin/"
	AdminLogin    = "/admin/login"
	AdminRegister = "/admin/register"

	AdminDashboard         = "/admin/dashboard"
	DashboardPrefix        = "/admin/dashboard/"
	DashboardSearch        = "/admin/dashboard/search"
	DashboardAll           = "/admin/dashboard/all"
	DashboardUserPattern   = DashboardPrefix + "users/{userID}"
	DashboardUserCVPattern = DashboardPrefix + "users/{userID}/cv"
)

// DashboardUser returns the detail path for one applicant.
func DashboardUser(userID string) string {
	return DashboardPrefix + "users/" + url.PathEscape(userID)
}

// DashboardUserCV returns the CV download path for one applicant.
func DashboardUserCV(userID string) string {
	return DashboardUser(userID) + "/cv"
}
