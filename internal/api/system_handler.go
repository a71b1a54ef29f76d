package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/service"
)

// SystemHandler serves the service-level endpoints: API info and health.
type SystemHandler struct {
	taskService service.TaskService
	info        config.APIConfig
	logger      *slog.Logger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(taskService service.TaskService, info config.APIConfig, logger *slog.Logger) *SystemHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for SystemHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SystemHandler")
	}

	return &SystemHandler{
		taskService: taskService,
		info:        info,
		logger:      logger.With(slog.String("component", "system_handler")),
	}
}

// Info handles GET /
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, InfoResponse{
		Name:        h.info.Name,
		Version:     h.info.Version,
		Description: h.info.Description,
		Endpoints: EndpointsInfo{
			Health: "/health",
			Tasks:  taskEndpoints,
		},
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.taskService.CountTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:     healthStatusHealthy,
		Message:    MsgHealthy,
		TasksCount: count,
	})
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgEndpointNotFound)
}

// MethodNotAllowed answers requests whose path matches a route but whose
// method does not.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
