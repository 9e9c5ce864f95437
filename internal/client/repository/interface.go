package repository

import (
	"context"

	"tax-practice-management/internal/model"
)

// Repository is the persistence interface for clients.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Client, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.Client, error)
	List(ctx context.Context, opt ListOptions) ([]model.Client, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Client, error)
}
