package domain

import "time"

// Task is a unit of work assigned to a guild role. Records are never
// deleted; completion only flips the flag and stamps the completer.
type Task struct {
	ID          int        `json:"id"`
	RoleID      string     `json:"role_id"`
	Description string     `json:"description"`
	Due         string     `json:"due"`
	Completed   bool       `json:"completed"`
	CreatedBy   string     `json:"created_by"`
	CompletedBy string     `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// DueLayout is the only accepted due-date form.
const DueLayout = "2006-01-02"

// NextTaskID returns max existing id + 1, or 1 for an empty store.
func NextTaskID(tasks []Task) int {
	next := 1
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}
