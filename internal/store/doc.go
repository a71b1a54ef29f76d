// Package store defines interfaces for task persistence.
// These interfaces keep the service and HTTP layers independent of how tasks
// are held; the in-memory implementation lives in internal/platform/memory.
package store
