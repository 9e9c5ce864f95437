package task

import (
	"context"

	"tax-practice-management/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (TaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (TaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (TaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// UpdateChecklist replaces a task's checklist and appends an activity
	// log entry recording the change.
	UpdateChecklist(ctx context.Context, sc model.Scope, input ChecklistInput) (TaskOutput, error)

	// ValidateSet checks a set of draft tasks for date, dependency, and
	// duplication problems. Each draft carries at most one issue.
	ValidateSet(drafts []Draft) Issues

	// Classify assigns a category to a task description via the
	// classification service, falling back to a default on mismatch.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}
