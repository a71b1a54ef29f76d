package domain

// Task is a single tracked unit of work. ID is assigned by the store on
// creation and never changes afterwards.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

// TaskInput is a validated create or update payload.
// IsCompleted is nil when the client did not send the key.
type TaskInput struct {
	Title       string
	Description string
	IsCompleted *bool
}

// CompletedOrDefault returns the supplied completion flag, or def when absent.
func (in TaskInput) CompletedOrDefault(def bool) bool {
	if in.IsCompleted == nil {
		return def
	}
	return *in.IsCompleted
}
