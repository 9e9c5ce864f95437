package taxreturn

import (
	"context"

	"tax-practice-management/internal/model"
)

// UseCase defines the business logic interface for the taxreturn domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (ReturnOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (ReturnOutput, error)

	// Update applies a partial update. Moving a linked return to completed
	// cascades completion to its project inside advisory transaction hooks.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (ReturnOutput, error)
}
