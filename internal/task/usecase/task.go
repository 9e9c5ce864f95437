package usecase

import (
	"context"
	"strings"
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/task"
	"tax-practice-management/internal/task/repository"
)

// Create inserts a new task after validating it as a single-draft set.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.TaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.TaskOutput{}, task.ErrTitleRequired
	}
	if issues := uc.ValidateSet([]task.Draft{draftFromCreate(input)}); len(issues) > 0 {
		return task.TaskOutput{}, &task.ValidationFailed{Issues: issues}
	}
	if input.Status == "" {
		input.Status = model.TaskStatusTodo
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}

	t, err := uc.repo.Create(ctx, repository.CreateOptions{
		FirmID:         sc.FirmID,
		ProjectID:      input.ProjectID,
		ParentTaskID:   input.ParentTaskID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
		Priority:       input.Priority,
		Category:       input.Category,
		AssigneeID:     input.AssigneeID,
		StartDate:      input.StartDate,
		DueDate:        input.DueDate,
		EstimatedHours: input.EstimatedHours,
		Checklist:      input.Checklist,
		Dependencies:   input.Dependencies,
		OrderIndex:     input.OrderIndex,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.Create: %v", err)
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: t}, nil
}

// List returns the firm's tasks matching the filters.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.List(ctx, repository.ListOptions{
		FirmID:     sc.FirmID,
		ProjectID:  input.Filters.ProjectID,
		AssigneeID: input.Filters.AssigneeID,
		Statuses:   input.Filters.Statuses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.List: %v", err)
		return task.ListOutput{}, err
	}

	if q := strings.ToLower(strings.TrimSpace(input.Filters.Search)); q != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			if strings.Contains(strings.ToLower(t.Title), q) ||
				strings.Contains(strings.ToLower(t.Description), q) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}

// Detail returns a single task.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.TaskOutput, error) {
	t, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.Detail: %v", err)
		return task.TaskOutput{}, err
	}
	if t.ID == "" {
		return task.TaskOutput{}, task.ErrNotFound
	}
	return task.TaskOutput{Task: t}, nil
}

// Update applies a partial update, revalidating the resulting dates. The
// repository write happens only when the post-change draft is valid.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.TaskOutput, error) {
	if input.Status != nil && !model.ValidTaskStatus(*input.Status) {
		return task.TaskOutput{}, task.ErrInvalidStatus
	}

	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.Update: %v", err)
		return task.TaskOutput{}, err
	}
	if existing.ID == "" {
		return task.TaskOutput{}, task.ErrNotFound
	}

	if issues := uc.ValidateSet([]task.Draft{draftAfterUpdate(existing, input)}); len(issues) > 0 {
		return task.TaskOutput{}, &task.ValidationFailed{Issues: issues}
	}

	t, err := uc.repo.Update(ctx, repository.UpdateOptions{
		FirmID:         sc.FirmID,
		ID:             input.ID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
		Priority:       input.Priority,
		Category:       input.Category,
		AssigneeID:     input.AssigneeID,
		StartDate:      input.StartDate,
		DueDate:        input.DueDate,
		EstimatedHours: input.EstimatedHours,
		OrderIndex:     input.OrderIndex,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.Update: %v", err)
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: t}, nil
}

// Delete removes one task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: id})
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return task.ErrNotFound
	}
	return uc.repo.Delete(ctx, sc.FirmID, id)
}

// draftFromCreate carries only the fields single-task validation checks.
// Dependencies reference tasks outside this one-element set, so they are
// not validated here.
func draftFromCreate(input task.CreateInput) task.Draft {
	return task.Draft{
		Title:     input.Title,
		StartDate: formatDraftDate(input.StartDate),
		DueDate:   formatDraftDate(input.DueDate),
	}
}

// draftAfterUpdate projects the task as it would look after the update,
// so date ordering is validated against the final values.
func draftAfterUpdate(existing model.Task, input task.UpdateInput) task.Draft {
	d := task.Draft{
		ID:        existing.ID,
		Title:     existing.Title,
		StartDate: formatDraftDate(existing.StartDate),
		DueDate:   formatDraftDate(existing.DueDate),
	}
	if input.Title != nil {
		d.Title = *input.Title
	}
	if input.StartDate != nil {
		d.StartDate = formatDraftDate(input.StartDate)
	}
	if input.DueDate != nil {
		d.DueDate = formatDraftDate(input.DueDate)
	}
	return d
}

func formatDraftDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
