// Package domain defines the task entity, its validation rules, and the errors
// shared across layers. It has no dependencies on storage or transport.
package domain
