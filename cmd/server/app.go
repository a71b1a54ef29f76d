package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore    store.TaskStore
	eventEmitter *events.InMemoryEventEmitter
	taskService  service.TaskService
}

// newApplication constructs the store, event emitter, and service and
// injects them into one another.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	app.taskStore = memory.NewTaskStore(logger)
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(&taskAuditHandler{
		logger: logger.With("component", "task_audit"),
	})

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) cleanup() {
	// Nothing is persisted; record what is dropped.
	if count, err := app.taskStore.Count(context.Background()); err == nil {
		app.logger.Info("Discarding in-memory tasks", "tasks_count", count)
	}
	app.logger.Info("Application shutdown completed")
}

// taskAuditHandler writes one log record per task lifecycle event.
type taskAuditHandler struct {
	logger *slog.Logger
}

func (h *taskAuditHandler) HandleEvent(ctx context.Context, event *events.TaskEvent) error {
	h.logger.InfoContext(ctx, "task event",
		"event_id", event.ID.String(),
		"event_type", event.Type,
		"task_id", event.TaskID,
		"created_at", event.CreatedAt)
	return nil
}
