package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask stores a new task built from a validated payload.
	// An absent completion flag defaults to false.
	CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error)

	// ListTasks returns tasks in creation order, optionally filtered by completion state.
	ListTasks(ctx context.Context, completed *bool) ([]domain.Task, error)

	// GetTask retrieves a task by its ID
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask overwrites a task's title and description, and its completion
	// flag when the payload carries one.
	UpdateTask(ctx context.Context, id int64, input domain.TaskInput) (*domain.Task, error)

	// DeleteTask removes a task
	DeleteTask(ctx context.Context, id int64) error

	// CountTasks returns the number of stored tasks
	CountTasks(ctx context.Context) (int, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore    store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore:    taskStore,
		eventEmitter: eventEmitter,
		logger:       logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.CreateTask(ctx, input.Title, input.Description, input.CompletedOrDefault(false))
	if err != nil {
		return nil, NewTaskServiceError("create_task", "failed to store task", err)
	}

	log.Info("task created", slog.Int64("task_id", task.ID))
	s.emit(ctx, events.TaskCreated, task.ID, task)
	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context, completed *bool) ([]domain.Task, error) {
	tasks, err := s.taskStore.GetAllTasks(ctx, completed)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to read tasks", err)
	}
	return tasks, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetTaskByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", fmt.Sprintf("failed to read task %d", id), err)
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	input domain.TaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.UpdateTask(ctx, id, input.Title, input.Description, input.IsCompleted)
	if err != nil {
		return nil, NewTaskServiceError("update_task", fmt.Sprintf("failed to update task %d", id), err)
	}

	log.Info("task updated",
		slog.Int64("task_id", task.ID),
		slog.Bool("is_completed", task.IsCompleted))
	s.emit(ctx, events.TaskUpdated, task.ID, task)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.DeleteTask(ctx, id); err != nil {
		return NewTaskServiceError("delete_task", fmt.Sprintf("failed to delete task %d", id), err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	s.emit(ctx, events.TaskDeleted, id, nil)
	return nil
}

// CountTasks implements TaskService.CountTasks
func (s *taskServiceImpl) CountTasks(ctx context.Context) (int, error) {
	count, err := s.taskStore.Count(ctx)
	if err != nil {
		return 0, NewTaskServiceError("count_tasks", "failed to count tasks", err)
	}
	return count, nil
}

// emit publishes a lifecycle event. The mutation has already been applied,
// so failures are logged rather than returned.
func (s *taskServiceImpl) emit(ctx context.Context, eventType string, taskID int64, task *domain.Task) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var payload interface{}
	if task != nil {
		payload = task
	}

	event, err := events.NewTaskEvent(eventType, taskID, payload)
	if err != nil {
		log.Error("failed to build task event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType),
			slog.Int64("task_id", taskID))
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Warn("task event delivery failed",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", eventType),
			slog.Int64("task_id", taskID))
	}
}
