// Package testutils provides helpers shared by the HTTP-level tests of the
// task API.
//
// # Test Servers
//
//	server := testutils.CreateTestServer(t, router)
//
// # Request Execution
//
//	resp := testutils.ExecuteRequest(t, server, http.MethodPost, "/tasks",
//	    `{"title":"Write docs","description":""}`)
//
// # Response Assertions
//
//	var task domain.Task
//	testutils.DecodeJSONResponse(t, resp, http.StatusCreated, &task)
//	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "Task not found")
//
// # Services
//
//	svc := testutils.NewTaskService(t)
package testutils
