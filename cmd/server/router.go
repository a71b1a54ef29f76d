package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/task-api/internal/api"
	"github.com/phrazzld/task-api/internal/api/middleware"
)

// setupRouter builds the chi router with the middleware stack and all routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.GetHead)
	r.Use(middleware.Trace(app.logger))
	if app.config.Server.Debug {
		r.Use(chimw.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	systemHandler := api.NewSystemHandler(app.taskService, app.config.API, app.logger)

	r.Get("/", systemHandler.Info)
	r.Get("/health", systemHandler.Health)

	// Registered on the root router so /tasks/ falls through to NotFound
	r.Post("/tasks", taskHandler.CreateTask)
	r.Get("/tasks", taskHandler.ListTasks)
	r.Get("/tasks/{id:[0-9]+}", taskHandler.GetTask)
	r.Put("/tasks/{id:[0-9]+}", taskHandler.UpdateTask)
	r.Delete("/tasks/{id:[0-9]+}", taskHandler.DeleteTask)

	return r
}
