package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/subscription"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error     string              `json:"error"`
	Fields    []domain.FieldError `json:"fields,omitempty"`
	RequestID string              `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:     message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

// respondError maps a service error onto an HTTP status. Unknown errors are
// logged and answered with a generic 500.
func respondError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve       *domain.ValidationError
		tooLarge *http.MaxBytesError
	)

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:     "validation failed",
			Fields:    ve.Errors,
			RequestID: ctxutil.RequestIDFromCtx(r.Context()),
		})
	case errors.As(err, &tooLarge):
		writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, r, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, r, http.StatusConflict, "conflict")
	case errors.Is(err, subscription.ErrBillingDisabled):
		writeError(w, r, http.StatusServiceUnavailable, "billing is not configured")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
