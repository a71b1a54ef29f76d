package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// Client-facing messages.
const (
	MsgTaskNotFound        = "Task not found"
	MsgInternalError       = "Internal server error"
	MsgEndpointNotFound    = "Endpoint not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgInvalidFilter       = "is_completed parameter must be true or false"
	MsgBodyTooLarge        = "Request body too large"
	MsgTaskDeleted         = "Task deleted successfully"
	MsgHealthy             = "Task API is running"
	healthStatusHealthy    = "healthy"
	completionFilterParam  = "is_completed"
	completionFilterValues = "oneof=true false"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// An id that parses as digits but not as int64 can never name a task
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, service.ErrTaskNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, shared.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message a client may see for err.
// Validation errors carry their own client-safe message; everything
// unrecognized collapses to a generic one.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalError
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, service.ErrTaskNotFound),
		store.IsNotFoundError(err):
		return MsgTaskNotFound

	case errors.As(err, &validationErr):
		return validationErr.Message

	case errors.Is(err, shared.ErrBodyTooLarge):
		return MsgBodyTooLarge

	default:
		return MsgInternalError
	}
}

// HandleAPIError writes the error response for err. Server errors use
// defaultMsg when given; the full error is logged in redacted form, at WARN
// for oversized bodies.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	var opts []shared.ResponseOption
	if status == http.StatusRequestEntityTooLarge {
		// Oversized bodies point at a misbehaving client worth noticing
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
