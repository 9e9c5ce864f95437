package repository

import (
	"context"

	"tax-practice-management/internal/model"
)

// Repository is the persistence interface for tax returns.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.TaxReturn, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.TaxReturn, error)
	List(ctx context.Context, opt ListOptions) ([]model.TaxReturn, error)
	Update(ctx context.Context, opt UpdateOptions) (model.TaxReturn, error)
}
