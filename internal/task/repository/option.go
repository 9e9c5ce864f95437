package repository

import (
	"time"

	"tax-practice-management/internal/model"
)

// CreateOptions is the input for Repository.Create.
type CreateOptions struct {
	FirmID         string
	ProjectID      string
	ParentTaskID   string
	Title          string
	Description    string
	Status         model.TaskStatus
	Priority       model.Priority
	Category       string
	AssigneeID     string
	StartDate      *time.Time
	DueDate        *time.Time
	EstimatedHours float64
	Checklist      []model.ChecklistItem
	Dependencies   []string
	OrderIndex     int
}

// GetOneOptions filters a single-task fetch.
type GetOneOptions struct {
	FirmID string
	ID     string
}

// ListOptions filters a task list fetch.
type ListOptions struct {
	FirmID     string
	ProjectID  string
	AssigneeID string
	Statuses   []model.TaskStatus
}

// UpdateOptions is a partial single-task update. Nil pointers are skipped.
// Checklist and ActivityLog replace the stored JSON blobs when non-nil.
type UpdateOptions struct {
	FirmID string
	ID     string

	Title          *string
	Description    *string
	Status         *string
	Priority       *string
	Category       *string
	AssigneeID     *string
	StartDate      *time.Time
	DueDate        *time.Time
	EstimatedHours *float64
	OrderIndex     *int

	Checklist   []model.ChecklistItem
	ActivityLog []model.ActivityLogEntry
}
