package applicant

import (
	"context"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/inflight"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/weberror"
)

const (
	formName = "applicant_registration"

	msgRegistered = "✅ Registration successful!"
	msgFailed     = "Registration failed"
	msgInProgress = "Registration already in progress"
)

type result int

const (
	resultRegistered result = iota
	resultFailed
	resultBusy
)

func (r result) label() string {
	switch r {
	case resultRegistered:
		return "success"
	case resultBusy:
		return "busy"
	default:
		return "failure"
	}
}

// outcome is what the form shows after a submission.
type outcome struct {
	result  result
	message string
}

type service struct {
	gateway  Gateway
	guard    *inflight.Guard
	recorder FormRecorder
}

func newService(g Gateway, guard *inflight.Guard, recorder FormRecorder) service {
	return service{gateway: g, guard: guard, recorder: recorder}
}

// register submits form while holding the in-flight slot for sessionID.
func (s service) register(ctx context.Context, sessionID string, form gateway.ApplicantForm) outcome {
	release, ok := s.guard.TryAcquire(inflight.Key(sessionID, formName))
	if !ok {
		return s.record(outcome{result: resultBusy, message: msgInProgress})
	}
	defer release()

	if err := s.gateway.RegisterApplicant(ctx, form); err != nil {
		return s.record(outcome{result: resultFailed, message: weberror.FormMessage(err, msgFailed)})
	}
	return s.record(outcome{result: resultRegistered, message: msgRegistered})
}

func (s service) record(out outcome) outcome {
	if s.recorder != nil {
		s.recorder.ObserveForm(formName, out.result.label())
	}
	return out
}
