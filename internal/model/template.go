package model

import "time"

// SeasonalPriority maps calendar quarters (1-4) to a default priority,
// so tax-season templates can escalate automatically.
type SeasonalPriority map[int]Priority

// ProjectTemplate is a reusable blueprint for a project's task list.
type ProjectTemplate struct {
	ID                    string
	FirmID                string
	Title                 string
	Description           string
	Category              ServiceCategory
	DefaultPriority       Priority
	EstimatedTotalMinutes int
	RecurringSchedule     string
	SeasonalPriority      SeasonalPriority
	Tasks                 []TemplateTask
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TemplateTask is one task inside a template. OrderIndex values are contiguous
// per template and drive manual reordering.
type TemplateTask struct {
	ID               string
	TemplateID       string
	Title            string
	Description      string
	EstimatedMinutes int
	Priority         Priority
	OrderIndex       int
	Dependencies     []string // IDs of other template tasks within the same template
}
