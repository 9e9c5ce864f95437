package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
	"tax-practice-management/internal/project/repository"
)

// BulkUpdate applies one partial-update payload to a batch of projects.
//
// The steps run under advisory transaction hooks: the database procedures
// signal intent but offer no atomicity, so a mid-workflow failure can leave
// the project update applied without the task cascade. Callers get the
// first error; already-applied changes are not undone.
func (uc *implUseCase) BulkUpdate(ctx context.Context, sc model.Scope, input project.BulkUpdateInput) (project.BulkUpdateOutput, error) {
	if err := validateBulkInput(input); err != nil {
		return project.BulkUpdateOutput{}, err
	}

	uc.hookStep(ctx, "begin", uc.hooks.Begin(ctx))

	affected, err := uc.repo.BulkUpdate(ctx, repository.BulkUpdateOptions{
		FirmID:         sc.FirmID,
		ProjectIDs:     input.ProjectIDs,
		Status:         input.Updates.Status,
		Priority:       input.Updates.Priority,
		DueDate:        input.Updates.DueDate,
		Description:    input.Updates.Description,
		ServiceInfo:    input.Updates.ServiceInfo,
		AccountingInfo: input.Updates.AccountingInfo,
		PayrollInfo:    input.Updates.PayrollInfo,
		TaxInfo:        input.Updates.TaxInfo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.BulkUpdate update: %v", err)
		uc.hookStep(ctx, "rollback", uc.hooks.Rollback(ctx))
		return project.BulkUpdateOutput{}, err
	}

	if input.Updates.Status != nil && *input.Updates.Status == string(model.ProjectStatusArchived) {
		archived, err := uc.repo.ArchiveTasks(ctx, sc.FirmID, input.ProjectIDs)
		if err != nil {
			uc.l.Errorf(ctx, "project/usecase.BulkUpdate archive cascade: %v", err)
			uc.hookStep(ctx, "rollback", uc.hooks.Rollback(ctx))
			return project.BulkUpdateOutput{}, err
		}
		uc.l.Infof(ctx, "project/usecase.BulkUpdate archived %d tasks under %d projects", archived, len(input.ProjectIDs))
	}

	uc.hookStep(ctx, "commit", uc.hooks.Commit(ctx))

	projects, err := uc.repo.ListByIDs(ctx, sc.FirmID, input.ProjectIDs)
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.BulkUpdate refetch: %v", err)
		uc.hookStep(ctx, "rollback", uc.hooks.Rollback(ctx))
		return project.BulkUpdateOutput{}, err
	}

	return project.BulkUpdateOutput{
		Projects: projects,
		Message:  fmt.Sprintf("Updated %d projects", affected),
	}, nil
}

// validateBulkInput checks the payload before anything is written. Each
// precondition has its own error so callers can report the exact cause.
func validateBulkInput(input project.BulkUpdateInput) error {
	if len(input.ProjectIDs) == 0 {
		return project.ErrNoProjectIDs
	}
	for _, id := range input.ProjectIDs {
		if _, err := uuid.Parse(id); err != nil {
			return project.ErrInvalidProjectID
		}
	}
	if input.Updates.IsEmpty() {
		return project.ErrEmptyUpdate
	}
	if input.Updates.Status != nil && !model.ValidProjectStatus(*input.Updates.Status) {
		return project.ErrInvalidStatus
	}
	return nil
}

// hookStep logs non-OK hook outcomes. Hooks are advisory; neither outcome
// stops the workflow.
func (uc *implUseCase) hookStep(ctx context.Context, name string, res repository.HookResult) {
	switch res {
	case repository.HookUnavailable:
		uc.l.Debugf(ctx, "project/usecase tx hook %s unavailable", name)
	case repository.HookFailed:
		uc.l.Warnf(ctx, "project/usecase tx hook %s failed", name)
	}
}
