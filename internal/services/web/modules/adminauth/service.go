package adminauth

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	apperrors "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/errors"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/weberror"
)

const (
	loginForm    = "admin_login"
	registerForm = "admin_register"

	minPasswordLength = 6

	msgCredentialsRequired = "Username and password are required"
	msgInvalidResponse     = "Invalid response from server"
	msgLoginFailed         = "Login failed"

	msgFieldsRequired  = "All fields are required"
	msgPasswordShort   = "Password must be at least 6 characters"
	msgPasswordsDiffer = "Passwords do not match"
	msgRegisterFailed  = "Registration failed"
	msgRegistered      = "✅ Admin registered successfully! Redirecting to login..."
)

// failure is a form error with the status the page is served with.
type failure struct {
	status  int
	message string
}

type service struct {
	gateway  Gateway
	recorder FormRecorder
}

func newService(g Gateway, recorder FormRecorder) service {
	return service{gateway: g, recorder: recorder}
}

// login validates credentials locally, then exchanges them for a token.
func (s service) login(ctx context.Context, username string, password string) (gateway.LoginResult, *failure) {
	if username == "" || password == "" {
		s.record(loginForm, false)
		return gateway.LoginResult{}, invalidInput(msgCredentialsRequired)
	}
	result, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		s.record(loginForm, false)
		return gateway.LoginResult{}, &failure{status: apperrors.HTTPStatus(err), message: loginMessage(err)}
	}
	s.record(loginForm, true)
	return result, nil
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, gateway.ErrMalformedResponse):
		return msgInvalidResponse
	case errors.Is(err, gateway.ErrNoResponse):
		return gateway.ErrNoResponse.Error()
	default:
		return weberror.FormMessage(err, msgLoginFailed)
	}
}

// firstTimeHint reports whether the login page should point at admin
// registration. A failed check shows the hint.
func (s service) firstTimeHint(ctx context.Context) bool {
	status, err := s.gateway.CheckAdminExists(ctx)
	if err != nil {
		return true
	}
	return !status.Exists
}

type registration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// validate applies the local checks in order; the first failure wins.
func (r registration) validate() string {
	switch {
	case r.Username == "" || r.Email == "" || r.Password == "" || r.ConfirmPassword == "":
		return msgFieldsRequired
	case utf8.RuneCountInString(r.Password) < minPasswordLength:
		return msgPasswordShort
	case r.Password != r.ConfirmPassword:
		return msgPasswordsDiffer
	default:
		return ""
	}
}

func (s service) register(ctx context.Context, in registration) *failure {
	if msg := in.validate(); msg != "" {
		s.record(registerForm, false)
		return invalidInput(msg)
	}
	if err := s.gateway.RegisterAdmin(ctx, in.Username, in.Email, in.Password, in.ConfirmPassword); err != nil {
		s.record(registerForm, false)
		return &failure{status: apperrors.HTTPStatus(err), message: weberror.FormMessage(err, msgRegisterFailed)}
	}
	s.record(registerForm, true)
	return nil
}

func (s service) record(form string, ok bool) {
	if s.recorder == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	s.recorder.ObserveForm(form, result)
}

func invalidInput(message string) *failure {
	err := apperrors.E(apperrors.KindInvalidInput, message)
	return &failure{status: apperrors.HTTPStatus(err), message: message}
}
