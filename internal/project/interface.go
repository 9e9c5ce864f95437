package project

import (
	"context"
	"time"

	"tax-practice-management/internal/model"
)

// UseCase defines the business logic interface for the project domain.
type UseCase interface {
	// Create inserts a new project, optionally instantiating it from a template.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (ProjectOutput, error)

	// List returns hydrated projects filtered, sorted, and optionally grouped in memory.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns a single hydrated project.
	Detail(ctx context.Context, sc model.Scope, id string) (ProjectOutput, error)

	// Update applies a partial update to a single project.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (ProjectOutput, error)

	// Archive soft-deletes a project and archives its tasks.
	Archive(ctx context.Context, sc model.Scope, id string) error

	// BulkUpdate applies one partial-update payload to a batch of projects,
	// cascading archival to their tasks, and returns the rehydrated records.
	BulkUpdate(ctx context.Context, sc model.Scope, input BulkUpdateInput) (BulkUpdateOutput, error)

	// Metrics computes aggregate counts over the filtered project set.
	Metrics(ctx context.Context, sc model.Scope, filters Filters) (MetricsOutput, error)

	// Deadline derives the effective deadline for a project, if any.
	Deadline(p model.Project) (time.Time, bool)

	// NextEstimatedTaxDeadline returns the next quarterly estimated-tax date.
	NextEstimatedTaxDeadline() time.Time
}
