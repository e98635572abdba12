// Package task defines the task record and its storage line codec.
package task

import "time"

// CreatedAtLayout is the timestamp layout stored with each record.
// Minute precision; the stored string is round-tripped verbatim.
const CreatedAtLayout = "2006-01-02 15:04"

// DefaultCategory is used when a task is added without a category.
const DefaultCategory = "personal"

// Priority represents a task priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Symbol returns the list marker for the priority. Unknown priorities
// render like medium.
func (p Priority) Symbol() string {
	switch p {
	case PriorityHigh:
		return "❗"
	case PriorityLow:
		return "·"
	default:
		return "▪"
	}
}

// Task represents a single tracked task.
type Task struct {
	Title     string
	DueDate   string
	Priority  Priority
	Category  string
	Completed bool
	CreatedAt string
}

// New constructs a task created now, at minute precision. Empty priority
// and category fall back to the defaults.
func New(title, dueDate string, priority Priority, category string) Task {
	if priority == "" {
		priority = PriorityMedium
	}
	if category == "" {
		category = DefaultCategory
	}
	return Task{
		Title:     title,
		DueDate:   dueDate,
		Priority:  priority,
		Category:  category,
		CreatedAt: time.Now().Format(CreatedAtLayout),
	}
}

// CreatedTime parses the record's creation timestamp.
func (t Task) CreatedTime() (time.Time, error) {
	return time.Parse(CreatedAtLayout, t.CreatedAt)
}
