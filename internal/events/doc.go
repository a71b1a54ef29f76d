// Package events provides types and interfaces for publishing task lifecycle
// events.
//
// Services emit a TaskEvent after every successful mutation without knowing
// which handlers will process it. Handlers are registered on an emitter at
// startup; the in-memory emitter dispatches synchronously to each of them.
//
// The primary components are:
// - TaskEvent: Describes a created, updated, or deleted task
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
