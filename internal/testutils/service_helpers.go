package testutils

import (
	"testing"

	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/stretchr/testify/require"
)

// NewTaskService builds a task service over a fresh in-memory store with an
// event emitter that has no handlers.
func NewTaskService(t *testing.T) service.TaskService {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	svc, err := service.NewTaskService(
		memory.NewTaskStore(log),
		events.NewInMemoryEventEmitter(log),
		log,
	)
	require.NoError(t, err, "failed to build task service")
	return svc
}
