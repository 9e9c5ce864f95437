package repository

import (
	"context"

	"tax-practice-management/internal/model"
)

// Repository is the persistence interface for tasks.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Task, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Task, error)
	Delete(ctx context.Context, firmID, id string) error
}
