// Package api handles incoming HTTP requests for the task API: it parses
// path and query values, validates payloads, calls the task service, and
// maps outcomes to HTTP status codes and JSON bodies.
package api
