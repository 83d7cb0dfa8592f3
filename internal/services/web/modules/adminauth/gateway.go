package adminauth

import (
	"context"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	apperrors "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/errors"
)

// Gateway performs admin credential operations against the backend.
type Gateway interface {
	Login(ctx context.Context, username string, password string) (gateway.LoginResult, error)
	RegisterAdmin(ctx context.Context, username string, email string, password string, confirmPassword string) error
	CheckAdminExists(ctx context.Context) (gateway.AdminStatus, error)
}

type unavailableGateway struct{}

func (unavailableGateway) Login(context.Context, string, string) (gateway.LoginResult, error) {
	return gateway.LoginResult{}, errUnavailable
}

func (unavailableGateway) RegisterAdmin(context.Context, string, string, string, string) error {
	return errUnavailable
}

func (unavailableGateway) CheckAdminExists(context.Context) (gateway.AdminStatus, error) {
	return gateway.AdminStatus{}, errUnavailable
}

var errUnavailable = apperrors.E(apperrors.KindUnavailable, "Admin sign-in is temporarily unavailable")
