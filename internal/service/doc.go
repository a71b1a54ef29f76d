// Package service implements the task operations used by the HTTP layer.
//
// TaskService sits between the handlers and the store: it applies the
// defaults of a validated payload, translates store errors into service
// sentinels, and publishes a lifecycle event after every successful mutation.
// Event delivery failures are logged and never undo or fail the mutation.
package service
