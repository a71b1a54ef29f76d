package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
)

// taskIDParam is the chi URL parameter holding the task ID.
const taskIDParam = "id"

// getPathTaskID extracts the task ID from the URL path. The route pattern
// only admits digits, so the remaining failure is an id outside int64 range,
// reported as domain.ErrInvalidID.
func getPathTaskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, taskIDParam)
	if raw == "" {
		return 0, domain.NewValidationError(taskIDParam, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(taskIDParam, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// parseCompletionFilter reads the optional is_completed query parameter.
// It returns nil when the parameter is absent. The value is compared
// case-insensitively; anything other than true or false, including an empty
// value, is a validation error.
func parseCompletionFilter(r *http.Request) (*bool, error) {
	query := r.URL.Query()
	if !query.Has(completionFilterParam) {
		return nil, nil
	}

	raw := strings.ToLower(query.Get(completionFilterParam))
	if err := shared.ValidateVar(raw, completionFilterValues); err != nil {
		return nil, domain.NewValidationError(completionFilterParam, MsgInvalidFilter, nil)
	}

	completed := raw == "true"
	return &completed, nil
}
