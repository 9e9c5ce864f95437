package repository

import (
	"context"

	"tax-practice-management/internal/model"
)

// Repository is the persistence interface for templates and their tasks.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.ProjectTemplate, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.ProjectTemplate, error)
	List(ctx context.Context, firmID string) ([]model.ProjectTemplate, error)
	Update(ctx context.Context, opt UpdateOptions) (model.ProjectTemplate, error)
	Delete(ctx context.Context, firmID, id string) error

	// ReplaceTasks swaps the template's task list for the given one and
	// returns the template with its new tasks.
	ReplaceTasks(ctx context.Context, firmID, templateID string, tasks []model.TemplateTask) (model.ProjectTemplate, error)
}
