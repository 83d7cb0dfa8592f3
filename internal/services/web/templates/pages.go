package templates

import "github.com/a-h/templ"

// Home renders the public landing page.
func Home() templ.Component {
	return render("home", homeContent)
}

// FormMessage is the success or error line shown above a form.
type FormMessage struct {
	Success string
	Error   string
}

// RegisterView is the applicant registration form state.
type RegisterView struct {
	FormMessage
	Name           string
	PassportNumber string
	DateOfBirth    string
	Designation    string
	PPType         string
	MobileNumber   string
	VillageTown    string
	Remark         string
	// FilesDropped is set when a failed submission carried attachments that
	// the browser will not resend.
	FilesDropped bool
}

// Register renders the applicant registration form.
func Register(view RegisterView) templ.Component {
	return render("register", view)
}

// AdminLoginView is the admin login form state.
type AdminLoginView struct {
	Error         string
	Username      string
	FirstTimeHint bool
}

// AdminLogin renders the admin login form.
func AdminLogin(view AdminLoginView) templ.Component {
	return render("admin_login", view)
}

// AdminRegisterView is the admin registration form state. Password fields
// are never echoed back.
type AdminRegisterView struct {
	FormMessage
	Username string
	Email    string
}

// AdminRegister renders the admin registration form.
func AdminRegister(view AdminRegisterView) templ.Component {
	return render("admin_register", view)
}

// ResultRow is one applicant in the dashboard result list.
type ResultRow struct {
	ID           string
	Name         string
	MobileNumber string
	DetailURL    string
	Selected     bool
}

// UserDetail is the selected applicant panel.
type UserDetail struct {
	ID             string
	Name           string
	PassportNumber string
	DateOfBirth    string
	Designation    string
	PPType         string
	MobileNumber   string
	VillageTown    string
	Remark         string
	HasPhoto       bool
	PhotoURL       string
	Initial        string
	HasCV          bool
	CVURL          string
}

// DashboardView is the admin search dashboard state.
type DashboardView struct {
	Query      string
	Error      string
	Results    []ResultRow
	CountLabel string
	Selected   *UserDetail
}

// Dashboard renders the admin search dashboard.
func Dashboard(view DashboardView) templ.Component {
	return render("dashboard", view)
}

// ErrorView is a standalone error page.
type ErrorView struct {
	StatusCode int
	Heading    string
	Message    string
}

// ErrorPage renders an error page body.
func ErrorPage(view ErrorView) templ.Component {
	return render("error", view)
}
