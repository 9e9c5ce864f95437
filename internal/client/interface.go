package client

import (
	"context"

	"tax-practice-management/internal/model"
)

// UseCase defines the business logic interface for the client domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (ClientOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (ClientOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (ClientOutput, error)
}
