package task

import (
	"time"

	"tax-practice-management/internal/model"
)

// CreateInput is the input for creating a task.
type CreateInput struct {
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

// UpdateInput is a partial single-task update. Nil means "not supplied".
type UpdateInput struct {
	ID             string
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
}

// Filters narrows the task list. Empty fields mean no constraint.
type Filters struct {
	ProjectID  string
	Statuses   []model.TaskStatus
	AssigneeID string
	Search     string
}

// ListInput is the input for the list operation.
type ListInput struct {
	Filters Filters
}

// ListOutput is the result of the list operation.
type ListOutput struct {
	Tasks []model.Task
	Total int
}

// TaskOutput wraps a single task.
type TaskOutput struct {
	Task model.Task
}

// ChecklistInput replaces a task's checklist wholesale. The caller sends
// the full desired list; item IDs are preserved where provided.
type ChecklistInput struct {
	TaskID string
	Items  []model.ChecklistItem
}

// Draft is one task in a set pending validation, before anything is
// persisted. Dates stay strings here so unparseable input surfaces as a
// validation issue instead of failing JSON binding.
type Draft struct {
	ID           string
	Title        string
	StartDate    string
	DueDate      string
	Dependencies []string // IDs or titles of other drafts in the same set
}

// IssueType classifies a validation failure.
type IssueType string

const (
	IssueDate       IssueType = "date"
	IssueDependency IssueType = "dependency"
	IssueCircular   IssueType = "circular"
	IssueDuplicate  IssueType = "duplicate"
	IssueRequired   IssueType = "required"
)

// Issue is one validation failure for one draft.
type Issue struct {
	Type    IssueType `json:"type"`
	Message string    `json:"message"`
}

// Issues maps a draft's key to its first recorded violation.
type Issues map[string]Issue

// ClassifyInput is the input for the AI classification helper.
type ClassifyInput struct {
	Title       string
	Description string
}

// Suggestion is one candidate category with its confidence in [0, 1].
type Suggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// ClassifyOutput is the classification result.
type ClassifyOutput struct {
	Category    string
	Suggestions []Suggestion
}
