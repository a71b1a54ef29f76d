package store

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Every task returned by a TaskStore is a copy; callers may modify it freely
// without affecting stored state.
type TaskStore interface {
	// CreateTask assigns the next ID to a new task, stores it, and returns it.
	// IDs start at 1, increase by one per call, and are never reused.
	CreateTask(ctx context.Context, title, description string, isCompleted bool) (*domain.Task, error)

	// GetAllTasks returns stored tasks in insertion order. A nil filter returns
	// every task; otherwise only tasks whose IsCompleted equals *filter.
	// The result is never nil.
	GetAllTasks(ctx context.Context, filter *bool) ([]domain.Task, error)

	// GetTaskByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetTaskByID(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask overwrites the title and description of an existing task and,
	// when isCompleted is non-nil, its completion flag.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, title, description string, isCompleted *bool) (*domain.Task, error)

	// DeleteTask removes a task by its ID.
	// Returns ErrTaskNotFound if no task was removed.
	DeleteTask(ctx context.Context, id int64) error

	// Count returns the number of tasks currently stored.
	Count(ctx context.Context) (int, error)
}
