package template

import (
	"tax-practice-management/internal/model"
)

// TaskInput is one task inside a template create/update payload.
type TaskInput struct {
	ID               string
	Title            string
	Description      string
	EstimatedMinutes int
	Priority         model.Priority
	OrderIndex       int
	Dependencies     []string
}

// CreateInput is the input for creating a template.
type CreateInput struct {
	Title             string
	Description       string
	Category          model.ServiceCategory
	DefaultPriority   model.Priority
	RecurringSchedule string
	SeasonalPriority  model.SeasonalPriority
	Tasks             []TaskInput
}

// UpdateInput is a partial template update. Nil means "not supplied".
// A non-nil Tasks slice replaces the template's task list wholesale.
type UpdateInput struct {
	ID                string
	Title             *string
	Description       *string
	Category          *string
	DefaultPriority   *string
	RecurringSchedule *string
	SeasonalPriority  model.SeasonalPriority
	Tasks             []TaskInput
}

// ListOutput is the result of the list operation.
type ListOutput struct {
	Templates []model.ProjectTemplate
	Total     int
}

// TemplateOutput wraps a single template.
type TemplateOutput struct {
	Template model.ProjectTemplate
}

// ExpandInput binds a template's task list to a project.
type ExpandInput struct {
	TemplateID string
	ProjectID  string
}

// ExpandOutput is the set of concrete tasks created from the template.
type ExpandOutput struct {
	Tasks []model.Task
}

// ReorderDirection moves a template task up or down one position.
type ReorderDirection string

const (
	ReorderUp   ReorderDirection = "up"
	ReorderDown ReorderDirection = "down"
)

// ReorderInput swaps one template task with its neighbor.
type ReorderInput struct {
	TemplateID string
	TaskID     string
	Direction  ReorderDirection
}
