package applicant

import (
	"context"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	apperrors "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/errors"
)

// Gateway submits applicant registrations to the backend.
type Gateway interface {
	RegisterApplicant(ctx context.Context, form gateway.ApplicantForm) error
}

type unavailableGateway struct{}

func (unavailableGateway) RegisterApplicant(context.Context, gateway.ApplicantForm) error {
	return apperrors.E(apperrors.KindUnavailable, "Registration is temporarily unavailable")
}
