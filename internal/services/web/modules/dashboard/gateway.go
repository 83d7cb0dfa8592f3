package dashboard

import (
	"context"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	apperrors "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/errors"
)

// Gateway reads applicant records for the dashboard.
type Gateway interface {
	SearchUsers(ctx context.Context, query string) ([]gateway.User, error)
	ListUsers(ctx context.Context) ([]gateway.User, error)
	GetUserByID(ctx context.Context, id string) (gateway.User, error)
	DownloadCV(ctx context.Context, id string) (*gateway.Download, error)
	PhotoURL(id string) string
}

type unavailableGateway struct{}

var errUnavailable = apperrors.E(apperrors.KindUnavailable, "Applicant search is temporarily unavailable")

func (unavailableGateway) SearchUsers(context.Context, string) ([]gateway.User, error) {
	return nil, errUnavailable
}

func (unavailableGateway) ListUsers(context.Context) ([]gateway.User, error) {
	return nil, errUnavailable
}

func (unavailableGateway) GetUserByID(context.Context, string) (gateway.User, error) {
	return gateway.User{}, errUnavailable
}

func (unavailableGateway) DownloadCV(context.Context, string) (*gateway.Download, error) {
	return nil, errUnavailable
}

func (unavailableGateway) PhotoURL(string) string { return "" }
