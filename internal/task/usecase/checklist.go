package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/task"
	"tax-practice-management/internal/task/repository"
)

// UpdateChecklist replaces a task's checklist and appends an activity log
// entry recording the new completion count.
func (uc *implUseCase) UpdateChecklist(ctx context.Context, sc model.Scope, input task.ChecklistInput) (task.TaskOutput, error) {
	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: input.TaskID})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.UpdateChecklist: %v", err)
		return task.TaskOutput{}, err
	}
	if existing.ID == "" {
		return task.TaskOutput{}, task.ErrNotFound
	}

	items := make([]model.ChecklistItem, len(input.Items))
	for i, item := range input.Items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		items[i] = item
	}

	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	logEntry := model.ActivityLogEntry{
		Type:      "checklist_update",
		Details:   fmt.Sprintf("checklist updated: %d/%d complete", completed, len(items)),
		Timestamp: time.Now(),
		ActorID:   sc.UserID,
	}

	t, err := uc.repo.Update(ctx, repository.UpdateOptions{
		FirmID:      sc.FirmID,
		ID:          input.TaskID,
		Checklist:   items,
		ActivityLog: append(existing.ActivityLog, logEntry),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task/usecase.UpdateChecklist: %v", err)
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: t}, nil
}
