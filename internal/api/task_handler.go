package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// readTaskPayload reads and validates a task payload from the request body.
func readTaskPayload(w http.ResponseWriter, r *http.Request) (*domain.TaskInput, error) {
	body, err := shared.ReadBody(w, r)
	if err != nil {
		if errors.Is(err, shared.ErrBodyTooLarge) {
			return nil, err
		}
		// An unreadable body is treated like a missing one
		return nil, domain.NewValidationError("body", domain.MsgBodyRequired, nil)
	}
	return domain.ValidateTaskPayload(body)
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	input, err := readTaskPayload(w, r)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), *input)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// ListTasks handles GET /tasks, optionally filtered by ?is_completed=true|false
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCompletionFilter(r)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// GetTask handles GET /tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/{id}.
// Existence is checked before the payload, so an unknown id answers 404
// even when the body is invalid.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	if _, err := h.taskService.GetTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	input, err := readTaskPayload(w, r)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	// The task may have been deleted since the existence check; the
	// service then reports not found and the client gets a 404.
	task, err := h.taskService.UpdateTask(r.Context(), id, *input)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	log.Debug("task updated", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, MsgInternalError)
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: MsgTaskDeleted})
}
