package model

import "time"

// TaskStatus is the lifecycle status of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusArchived   TaskStatus = "archived"
)

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview,
		TaskStatusCompleted, TaskStatusBlocked, TaskStatusArchived:
		return true
	}
	return false
}

// ChecklistItem is one entry in a task's ordered checklist.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ActivityLogEntry is one append-only entry in a task's activity log.
type ActivityLogEntry struct {
	Type      string    `json:"type"` // status_change, assignment, comment, checklist_update
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	ActorID   string    `json:"actor_id"`
}

// RecurringConfig is an opaque schedule descriptor carried through verbatim.
type RecurringConfig struct {
	Frequency string `json:"frequency"` // daily, weekly, monthly, yearly
	Interval  int    `json:"interval"`
	EndDate   string `json:"end_date,omitempty"`
}

// Task is a unit of work under a project, or a template task not yet bound.
type Task struct {
	ID              string
	FirmID          string
	ProjectID       string // empty for unbound template tasks
	ParentTaskID    string
	Title           string
	Description     string
	Status          TaskStatus
	Priority        Priority
	Category        string
	AssigneeID      string
	StartDate       *time.Time
	DueDate         *time.Time
	EstimatedHours  float64
	Checklist       []ChecklistItem
	ActivityLog     []ActivityLogEntry
	RecurringConfig *RecurringConfig
	Dependencies    []string // titles of tasks this one depends on, within one set
	OrderIndex      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ChecklistProgress returns completed and total checklist counts.
// Completed can never exceed total since each item contributes at most one.
func (t Task) ChecklistProgress() (completed, total int) {
	total = len(t.Checklist)
	for _, item := range t.Checklist {
		if item.Completed {
			completed++
		}
	}
	return completed, total
}
