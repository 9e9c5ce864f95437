package usecase

import (
	"context"
	"time"

	"tax-practice-management/internal/model"
	projectRepo "tax-practice-management/internal/project/repository"
	"tax-practice-management/internal/taxreturn"
	"tax-practice-management/internal/taxreturn/repository"
)

// Create inserts a new tax return.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input taxreturn.CreateInput) (taxreturn.ReturnOutput, error) {
	if input.ClientID == "" {
		return taxreturn.ReturnOutput{}, taxreturn.ErrClientRequired
	}
	if input.TaxYear < 1900 || input.TaxYear > time.Now().Year()+1 {
		return taxreturn.ReturnOutput{}, taxreturn.ErrInvalidYear
	}
	if input.ReturnType == "" {
		input.ReturnType = model.TaxReturnOther
	}
	if input.Status == "" {
		input.Status = model.TaxReturnStatusNotStarted
	}
	if !model.ValidTaxReturnStatus(string(input.Status)) {
		return taxreturn.ReturnOutput{}, taxreturn.ErrInvalidStatus
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		FirmID:        sc.FirmID,
		ClientID:      input.ClientID,
		ProjectID:     input.ProjectID,
		ReturnType:    input.ReturnType,
		TaxYear:       input.TaxYear,
		Status:        input.Status,
		DueDate:       input.DueDate,
		IsExtended:    input.IsExtended,
		ExtensionDate: input.ExtensionDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "taxreturn/usecase.Create: %v", err)
		return taxreturn.ReturnOutput{}, err
	}
	return taxreturn.ReturnOutput{Return: created}, nil
}

// List returns the firm's tax returns.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input taxreturn.ListInput) (taxreturn.ListOutput, error) {
	returns, err := uc.repo.List(ctx, repository.ListOptions{
		FirmID:      sc.FirmID,
		ClientID:    input.Filters.ClientID,
		TaxYear:     input.Filters.TaxYear,
		Statuses:    input.Filters.Status,
		ReturnTypes: input.Filters.ReturnType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "taxreturn/usecase.List: %v", err)
		return taxreturn.ListOutput{}, err
	}
	return taxreturn.ListOutput{Returns: returns, Total: len(returns)}, nil
}

// Detail returns a single tax return.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (taxreturn.ReturnOutput, error) {
	t, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "taxreturn/usecase.Detail: %v", err)
		return taxreturn.ReturnOutput{}, err
	}
	if t.ID == "" {
		return taxreturn.ReturnOutput{}, taxreturn.ErrNotFound
	}
	return taxreturn.ReturnOutput{Return: t}, nil
}

// Update applies a partial update. When the update moves a linked return to
// completed, the linked project is marked completed too, under advisory
// transaction hooks the same way the bulk project workflow runs.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input taxreturn.UpdateInput) (taxreturn.ReturnOutput, error) {
	if input.Status != nil && !model.ValidTaxReturnStatus(*input.Status) {
		return taxreturn.ReturnOutput{}, taxreturn.ErrInvalidStatus
	}

	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "taxreturn/usecase.Update: %v", err)
		return taxreturn.ReturnOutput{}, err
	}
	if existing.ID == "" {
		return taxreturn.ReturnOutput{}, taxreturn.ErrNotFound
	}

	completing := input.Status != nil &&
		*input.Status == string(model.TaxReturnStatusCompleted) &&
		existing.Status != model.TaxReturnStatusCompleted

	projectID := existing.ProjectID
	if input.ProjectID != nil {
		projectID = *input.ProjectID
	}
	cascade := completing && projectID != ""

	if cascade {
		uc.hookStep(ctx, "begin", uc.hooks.Begin(ctx))
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{
		FirmID:        sc.FirmID,
		ID:            input.ID,
		ProjectID:     input.ProjectID,
		Status:        input.Status,
		DueDate:       input.DueDate,
		IsExtended:    input.IsExtended,
		ExtensionDate: input.ExtensionDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "taxreturn/usecase.Update: %v", err)
		if cascade {
			uc.hookStep(ctx, "rollback", uc.hooks.Rollback(ctx))
		}
		return taxreturn.ReturnOutput{}, err
	}

	if cascade {
		status := string(model.ProjectStatusCompleted)
		if _, err := uc.projectRepo.Update(ctx, projectRepo.UpdateOptions{
			FirmID: sc.FirmID,
			ID:     projectID,
			Status: &status,
		}); err != nil {
			uc.l.Errorf(ctx, "taxreturn/usecase.Update project cascade: %v", err)
			uc.hookStep(ctx, "rollback", uc.hooks.Rollback(ctx))
			return taxreturn.ReturnOutput{}, err
		}
		uc.hookStep(ctx, "commit", uc.hooks.Commit(ctx))
		uc.l.Infof(ctx, "taxreturn/usecase.Update completed return %s cascaded to project %s", input.ID, projectID)
	}

	return taxreturn.ReturnOutput{Return: updated}, nil
}

// hookStep logs non-OK hook outcomes. Hooks are advisory; neither outcome
// stops the workflow.
func (uc *implUseCase) hookStep(ctx context.Context, name string, res projectRepo.HookResult) {
	switch res {
	case projectRepo.HookUnavailable:
		uc.l.Debugf(ctx, "taxreturn/usecase tx hook %s unavailable", name)
	case projectRepo.HookFailed:
		uc.l.Warnf(ctx, "taxreturn/usecase tx hook %s failed", name)
	}
}
