package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:        "127.0.0.1",
			Port:        0,
			LogLevel:    "debug",
			Environment: "testing",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://example.com"},
		},
		API: config.APIConfig{
			Name:        "Task Management API",
			Version:     "1.0.0",
			Description: "A simple REST API for managing tasks",
		},
	}
}

func newTestApp(t *testing.T) (*application, *logger.TestLogBuffer) {
	t.Helper()
	log, buf := logger.GetTestLogger(t)
	app, err := newApplication(testConfig(), log)
	require.NoError(t, err)
	return app, buf
}

func TestTaskLifecycleScenario(t *testing.T) {
	app, _ := newTestApp(t)
	server := testutils.CreateTestServer(t, app.setupRouter())

	var task domain.Task
	resp := testutils.ExecuteRequest(t, server, http.MethodPost, "/tasks", `{"title":"A","description":"d"}`)
	testutils.DecodeJSONResponse(t, resp, http.StatusCreated, &task)
	assert.Equal(t, domain.Task{ID: 1, Title: "A", Description: "d"}, task)

	resp = testutils.ExecuteRequest(t, server, http.MethodPost, "/tasks", `{"title":"B","description":"e"}`)
	testutils.DecodeJSONResponse(t, resp, http.StatusCreated, &task)
	assert.Equal(t, int64(2), task.ID)

	var tasks []domain.Task
	resp = testutils.ExecuteRequest(t, server, http.MethodGet, "/tasks?is_completed=false", "")
	testutils.DecodeJSONResponse(t, resp, http.StatusOK, &tasks)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, int64(2), tasks[1].ID)

	resp = testutils.ExecuteRequest(t, server, http.MethodPut, "/tasks/1",
		`{"title":"A2","description":"d2","is_completed":true}`)
	testutils.DecodeJSONResponse(t, resp, http.StatusOK, &task)
	assert.Equal(t, domain.Task{ID: 1, Title: "A2", Description: "d2", IsCompleted: true}, task)

	resp = testutils.ExecuteRequest(t, server, http.MethodGet, "/tasks?is_completed=true", "")
	testutils.DecodeJSONResponse(t, resp, http.StatusOK, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(1), tasks[0].ID)

	var msg api.MessageResponse
	resp = testutils.ExecuteRequest(t, server, http.MethodDelete, "/tasks/2", "")
	testutils.DecodeJSONResponse(t, resp, http.StatusOK, &msg)
	assert.Equal(t, "Task deleted successfully", msg.Message)

	resp = testutils.ExecuteRequest(t, server, http.MethodGet, "/tasks/2", "")
	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "Task not found")

	resp = testutils.ExecuteRequest(t, server, http.MethodPost, "/tasks", `{"description":"no title"}`)
	testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, "Title is required")

	// ids are never reused after a delete
	resp = testutils.ExecuteRequest(t, server, http.MethodPost, "/tasks", `{"title":"C","description":""}`)
	testutils.DecodeJSONResponse(t, resp, http.StatusCreated, &task)
	assert.Equal(t, int64(3), task.ID)
}

func TestErrorResponsesCarryTraceID(t *testing.T) {
	app, _ := newTestApp(t)
	server := testutils.CreateTestServer(t, app.setupRouter())

	var errResp shared.ErrorResponse
	resp := testutils.ExecuteRequest(t, server, http.MethodGet, "/tasks/77", "")
	testutils.DecodeJSONResponse(t, resp, http.StatusNotFound, &errResp)
	assert.Equal(t, "Task not found", errResp.Error)
	assert.Len(t, errResp.TraceID, 2*shared.TraceIDLength)
}

func TestRouterFallbacks(t *testing.T) {
	app, buf := newTestApp(t)
	mux, ok := app.setupRouter().(*chi.Mux)
	require.True(t, ok)
	mux.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("exploded")
	})
	server := testutils.CreateTestServer(t, mux)

	resp := testutils.ExecuteRequest(t, server, http.MethodGet, "/missing", "")
	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "Endpoint not found")

	resp = testutils.ExecuteRequest(t, server, http.MethodGet, "/tasks/abc", "")
	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "Endpoint not found")

	resp = testutils.ExecuteRequest(t, server, http.MethodPatch, "/tasks/1", `{}`)
	testutils.AssertErrorResponse(t, resp, http.StatusMethodNotAllowed, "Method not allowed")

	resp = testutils.ExecuteRequest(t, server, http.MethodPost, "/health", "")
	testutils.AssertErrorResponse(t, resp, http.StatusMethodNotAllowed, "Method not allowed")

	resp = testutils.ExecuteRequest(t, server, http.MethodGet, "/boom", "")
	testutils.AssertErrorResponse(t, resp, http.StatusInternalServerError, "Internal server error")
	logger.AssertLogContains(t, buf, "[STACK_TRACE_REDACTED]")
}

func TestTrailingSlashIsNotARoute(t *testing.T) {
	app, _ := newTestApp(t)
	server := testutils.CreateTestServer(t, app.setupRouter())

	resp := testutils.ExecuteRequest(t, server, http.MethodPost, "/tasks/", `{"title":"A","description":"d"}`)
	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "Endpoint not found")

	resp = testutils.ExecuteRequest(t, server, http.MethodGet, "/tasks/", "")
	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "Endpoint not found")

	count, err := app.taskStore.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHeadFallsBackToGet(t *testing.T) {
	app, _ := newTestApp(t)
	server := testutils.CreateTestServer(t, app.setupRouter())

	testutils.ExecuteRequest(t, server, http.MethodPost, "/tasks", `{"title":"A","description":"d"}`)

	for _, path := range []string{"/", "/health", "/tasks", "/tasks/1"} {
		t.Run(path, func(t *testing.T) {
			resp := testutils.ExecuteRequest(t, server, http.MethodHead, path, "")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}

	resp := testutils.ExecuteRequest(t, server, http.MethodHead, "/tasks/99", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	app, _ := newTestApp(t)
	server := testutils.CreateTestServer(t, app.setupRouter())

	t.Run("allowed origin", func(t *testing.T) {
		resp := testutils.ExecuteRequest(t, server, http.MethodGet, "/health", "",
			testutils.WithHeader("Origin", "http://example.com"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "http://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin", func(t *testing.T) {
		resp := testutils.ExecuteRequest(t, server, http.MethodGet, "/health", "",
			testutils.WithHeader("Origin", "http://evil.example"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		resp := testutils.ExecuteRequest(t, server, http.MethodOptions, "/tasks/1", "",
			testutils.WithHeader("Origin", "http://example.com"),
			testutils.WithHeader("Access-Control-Request-Method", http.MethodPut))
		assert.Equal(t, "http://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.MethodPut, resp.Header.Get("Access-Control-Allow-Methods"))
	})
}

func TestTaskEventsAreAudited(t *testing.T) {
	app, buf := newTestApp(t)
	server := testutils.CreateTestServer(t, app.setupRouter())

	testutils.ExecuteRequest(t, server, http.MethodPost, "/tasks", `{"title":"A","description":""}`)
	testutils.ExecuteRequest(t, server, http.MethodDelete, "/tasks/1", "")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)

	var types []string
	for _, entry := range entries {
		if entry["msg"] == "task event" {
			types = append(types, entry["event_type"].(string))
		}
	}
	assert.Equal(t, []string{"task.created", "task.deleted"}, types)
}

func TestNewApplicationRequiresConfig(t *testing.T) {
	_, err := newApplication(nil, nil)
	assert.Error(t, err)
}

func TestRunStopsWhenContextCanceled(t *testing.T) {
	app, buf := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	logger.AssertLogContains(t, buf, "Server shutdown completed")
}
