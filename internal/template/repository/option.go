package repository

import (
	"tax-practice-management/internal/model"
)

// CreateOptions is the input for Repository.Create.
type CreateOptions struct {
	FirmID            string
	Title             string
	Description       string
	Category          model.ServiceCategory
	DefaultPriority   model.Priority
	RecurringSchedule string
	SeasonalPriority  model.SeasonalPriority
	Tasks             []model.TemplateTask
}

// GetOneOptions filters a single-template fetch.
type GetOneOptions struct {
	FirmID string
	ID     string
}

// UpdateOptions is a partial template update. Nil pointers are skipped.
type UpdateOptions struct {
	FirmID string
	ID     string

	Title             *string
	Description       *string
	Category          *string
	DefaultPriority   *string
	RecurringSchedule *string
	SeasonalPriority  model.SeasonalPriority
}
