package repository

import (
	"context"

	"tax-practice-management/internal/model"
)

// Repository is the persistence interface for projects and the task-archival
// cascade that the bulk workflow owns.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Project, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.Project, error)
	List(ctx context.Context, opt ListOptions) ([]model.ProjectWithRelations, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Project, error)

	// BulkUpdate applies one update set to every project in opt.ProjectIDs
	// and returns the number of rows touched.
	BulkUpdate(ctx context.Context, opt BulkUpdateOptions) (int64, error)

	// ArchiveTasks flips every task under the given projects to archived.
	ArchiveTasks(ctx context.Context, firmID string, projectIDs []string) (int64, error)

	// ListByIDs returns the given projects hydrated with client and task
	// relations, for the bulk-update response payload.
	ListByIDs(ctx context.Context, firmID string, ids []string) ([]model.ProjectWithRelations, error)
}

// HookResult describes the outcome of an advisory transaction hook.
type HookResult int

const (
	HookOK HookResult = iota
	HookUnavailable
	HookFailed
)

// TxHooks models the backend's optional integrity procedures. They signal
// transactional intent without real guarantees: Unavailable and Failed are
// logged by callers and never block the primary operation.
type TxHooks interface {
	Begin(ctx context.Context) HookResult
	Commit(ctx context.Context) HookResult
	Rollback(ctx context.Context) HookResult
}
