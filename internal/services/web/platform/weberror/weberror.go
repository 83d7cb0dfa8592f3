// Package weberror renders shared error pages for web modules.
package weberror

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	apperrors "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/errors"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/pagerender"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
	webtemplates "github.com/sanjayconsultancy/visadesk/internal/services/web/templates"
)

// PublicMessage resolves a user-safe error message.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr apperrors.Error
	if stderrors.As(err, &appErr) && strings.TrimSpace(appErr.Message) != "" {
		return appErr.Message
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return gateway.MessageOr(err, http.StatusText(statusCode))
}

// FormMessage resolves the inline message for a failed form action: a typed
// web error message, then the backend message, then a local validation
// message, then fallback.
func FormMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var appErr apperrors.Error
	if stderrors.As(err, &appErr) && strings.TrimSpace(appErr.Message) != "" {
		return appErr.Message
	}
	if msg := gateway.ServerMessage(err); msg != "" {
		return msg
	}
	var validationErr *gateway.ValidationError
	if stderrors.As(err, &validationErr) && strings.TrimSpace(validationErr.Message) != "" {
		return validationErr.Message
	}
	return fallback
}

// Write renders err as a full error page with its mapped status.
func Write(w http.ResponseWriter, r *http.Request, err error, policy requestmeta.SchemePolicy) {
	WriteStatus(w, r, apperrors.HTTPStatus(err), PublicMessage(err), policy)
}

// WriteStatus renders an error page for statusCode with message.
func WriteStatus(w http.ResponseWriter, r *http.Request, statusCode int, message string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	heading := http.StatusText(statusCode)
	if strings.TrimSpace(message) == "" {
		message = heading
	}
	err := pagerender.Write(w, r, pagerender.Page{
		Title:      heading,
		StatusCode: statusCode,
		Body: webtemplates.ErrorPage(webtemplates.ErrorView{
			StatusCode: statusCode,
			Heading:    heading,
			Message:    message,
		}),
	}, policy)
	if err != nil {
		http.Error(w, message, statusCode)
	}
}
