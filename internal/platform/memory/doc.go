// Package memory provides an in-process implementation of store.TaskStore.
//
// All tasks live in a single slice guarded by one lock. Every mutation holds
// the write lock across its whole check-then-act sequence, so concurrent
// updates and deletes of the same task are linearizable. Nothing survives a
// process restart.
package memory
