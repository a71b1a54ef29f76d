package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/testutils"
)

var testAPIInfo = config.APIConfig{
	Name:        "Task Management API",
	Version:     "1.0.0",
	Description: "A simple REST API for managing tasks",
}

// newTestRouter wires the handlers the same way the server does, without
// the middleware stack.
func newTestRouter(t *testing.T, svc service.TaskService) http.Handler {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	tasks := api.NewTaskHandler(svc, log)
	system := api.NewSystemHandler(svc, testAPIInfo, log)

	r := chi.NewRouter()
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)
	r.Get("/", system.Info)
	r.Get("/health", system.Health)
	r.Post("/tasks", tasks.CreateTask)
	r.Get("/tasks", tasks.ListTasks)
	r.Get("/tasks/{id:[0-9]+}", tasks.GetTask)
	r.Put("/tasks/{id:[0-9]+}", tasks.UpdateTask)
	r.Delete("/tasks/{id:[0-9]+}", tasks.DeleteTask)
	return r
}

// newTestServer starts a server backed by a fresh in-memory task service.
func newTestServer(t *testing.T) (*httptest.Server, service.TaskService) {
	t.Helper()
	svc := testutils.NewTaskService(t)
	return testutils.CreateTestServer(t, newTestRouter(t, svc)), svc
}

// MockTaskService implements service.TaskService with overridable functions.
type MockTaskService struct {
	CreateTaskFn func(ctx context.Context, input domain.TaskInput) (*domain.Task, error)
	ListTasksFn  func(ctx context.Context, completed *bool) ([]domain.Task, error)
	GetTaskFn    func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id int64, input domain.TaskInput) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int64) error
	CountTasksFn func(ctx context.Context) (int, error)
}

func (m *MockTaskService) CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, input)
	}
	return &domain.Task{ID: 1, Title: input.Title, Description: input.Description}, nil
}

func (m *MockTaskService) ListTasks(ctx context.Context, completed *bool) ([]domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, completed)
	}
	return []domain.Task{}, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, service.ErrTaskNotFound
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, input domain.TaskInput) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, input)
	}
	return nil, service.ErrTaskNotFound
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return service.ErrTaskNotFound
}

func (m *MockTaskService) CountTasks(ctx context.Context) (int, error) {
	if m.CountTasksFn != nil {
		return m.CountTasksFn(ctx)
	}
	return 0, nil
}
