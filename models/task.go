package models

import "time"

// TaskStatus is the lifecycle state of a task as defined by the server API.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// Valid reports whether s is one of the statuses the API accepts.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// TaskPriority is the urgency level of a task as defined by the server API.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Valid reports whether p is one of the priorities the API accepts.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank returns the numeric severity of the priority, higher is more urgent.
// Used for descending-severity ordering (HIGH before MEDIUM before LOW).
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Task is a single task record owned by the remote service.
//
// The server is the source of truth: the client holds Task values only inside
// the write-through cache of the task service, and every mutation replaces the
// cached copy with the full object returned by the server. Identity is ID.
type Task struct {
	// ID is the server-assigned opaque identifier.
	ID string `json:"id"`

	// Title is the short summary of the task. Never empty on server records.
	Title string `json:"title"`

	// Description is optional free-form detail text.
	Description string `json:"description,omitempty"`

	// Status is the current lifecycle state.
	Status TaskStatus `json:"status"`

	// Priority is the urgency level.
	Priority TaskPriority `json:"priority"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}
