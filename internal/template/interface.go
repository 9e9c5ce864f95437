package template

import (
	"context"

	"tax-practice-management/internal/model"
)

// UseCase defines the business logic interface for the template domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (TemplateOutput, error)
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (TemplateOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (TemplateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Expand instantiates the template's tasks under a project, converting
	// estimated minutes to hours and preserving dependency order.
	Expand(ctx context.Context, sc model.Scope, input ExpandInput) (ExpandOutput, error)

	// Reorder swaps a template task with its neighbor in order_index.
	Reorder(ctx context.Context, sc model.Scope, input ReorderInput) (TemplateOutput, error)
}
