package httpx

import (
	"log/slog"
	"net/http"

	apperrors "github.com/campushire/campushire-web/internal/errors"
)

// statusForError maps the application error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsUnauthorized(err):
		return http.StatusUnauthorized
	case apperrors.IsBanned(err):
		return http.StatusForbidden
	case apperrors.IsTimeout(err):
		return http.StatusGatewayTimeout
	case apperrors.IsUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorPageData is what the error template renders.
type errorPageData struct {
	Status  int
	Code    string
	Message string
}

// RenderErrorPage writes an HTML error page for a failed page load.
func RenderErrorPage(renderer *TemplateRenderer, w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusForError(err)
	if logger != nil {
		logger.Error("page load failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.String("request_id", GetRequestIDFromContext(r.Context())),
			slog.Any("error", err),
		)
	}

	data := NewPageData(r, "Something went wrong", errorPageData{
		Status:  status,
		Code:    string(apperrors.GetCode(err)),
		Message: http.StatusText(status),
	})
	if renderErr := renderer.RenderStatus(w, status, "error", data); renderErr != nil {
		http.Error(w, http.StatusText(status), status)
	}
}
