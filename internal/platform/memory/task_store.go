package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskStore implements store.TaskStore in memory.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []*domain.Task
	nextID int64
	logger *slog.Logger
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty store whose first task will get ID 1.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make([]*domain.Task, 0),
		nextID: 1,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// CreateTask implements store.TaskStore.CreateTask.
func (s *TaskStore) CreateTask(
	ctx context.Context,
	title, description string,
	isCompleted bool,
) (*domain.Task, error) {
	s.mu.Lock()
	task := &domain.Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		IsCompleted: isCompleted,
	}
	s.nextID++
	s.tasks = append(s.tasks, task)
	created := *task
	s.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task stored",
		slog.Int64("task_id", created.ID))
	return &created, nil
}

// GetAllTasks implements store.TaskStore.GetAllTasks.
func (s *TaskStore) GetAllTasks(ctx context.Context, filter *bool) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter != nil && task.IsCompleted != *filter {
			continue
		}
		result = append(result, *task)
	}
	return result, nil
}

// GetTaskByID implements store.TaskStore.GetTaskByID.
func (s *TaskStore) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrTaskNotFound
	}
	task := *s.tasks[i]
	return &task, nil
}

// UpdateTask implements store.TaskStore.UpdateTask.
// The lookup and the overwrite happen under one lock acquisition.
func (s *TaskStore) UpdateTask(
	ctx context.Context,
	id int64,
	title, description string,
	isCompleted *bool,
) (*domain.Task, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, store.ErrTaskNotFound
	}

	task := s.tasks[i]
	task.Title = title
	task.Description = description
	if isCompleted != nil {
		task.IsCompleted = *isCompleted
	}
	updated := *task
	s.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task overwritten",
		slog.Int64("task_id", id),
		slog.Bool("is_completed", updated.IsCompleted))
	return &updated, nil
}

// DeleteTask implements store.TaskStore.DeleteTask.
// The lookup and the removal happen under one lock acquisition.
func (s *TaskStore) DeleteTask(ctx context.Context, id int64) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return store.ErrTaskNotFound
	}

	copy(s.tasks[i:], s.tasks[i+1:])
	s.tasks[len(s.tasks)-1] = nil
	s.tasks = s.tasks[:len(s.tasks)-1]
	s.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task removed", slog.Int64("task_id", id))
	return nil
}

// Count implements store.TaskStore.Count.
func (s *TaskStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks), nil
}

// indexOf returns the slice position of the task with id, or -1.
// Callers must hold s.mu.
func (s *TaskStore) indexOf(id int64) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
