package api

// MessageResponse is a body carrying a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	TasksCount int    `json:"tasks_count"`
}

// InfoResponse is the body of GET /.
type InfoResponse struct {
	Name        string        `json:"name"`
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Endpoints   EndpointsInfo `json:"endpoints"`
}

// EndpointsInfo lists the routes the API serves.
type EndpointsInfo struct {
	Health string        `json:"health"`
	Tasks  TaskEndpoints `json:"tasks"`
}

// TaskEndpoints describes the task routes.
type TaskEndpoints struct {
	Create  string `json:"create"`
	GetAll  string `json:"get_all"`
	GetByID string `json:"get_by_id"`
	Update  string `json:"update"`
	Delete  string `json:"delete"`
	Filter  string `json:"filter"`
}

var taskEndpoints = TaskEndpoints{
	Create:  "POST /tasks",
	GetAll:  "GET /tasks",
	GetByID: "GET /tasks/<id>",
	Update:  "PUT /tasks/<id>",
	Delete:  "DELETE /tasks/<id>",
	Filter:  "GET /tasks?is_completed=true|false",
}
