package usecase

import (
	"context"
	"sort"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/template"
	"tax-practice-management/internal/template/repository"
)

// Reorder swaps a template task with its neighbor in order_index. Moving the
// first task up or the last task down is rejected.
func (uc *implUseCase) Reorder(ctx context.Context, sc model.Scope, input template.ReorderInput) (template.TemplateOutput, error) {
	if input.Direction != template.ReorderUp && input.Direction != template.ReorderDown {
		return template.TemplateOutput{}, template.ErrInvalidDirection
	}

	tpl, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: input.TemplateID})
	if err != nil {
		uc.l.Errorf(ctx, "template/usecase.Reorder: %v", err)
		return template.TemplateOutput{}, err
	}
	if tpl.ID == "" {
		return template.TemplateOutput{}, template.ErrNotFound
	}

	tasks := make([]model.TemplateTask, len(tpl.Tasks))
	copy(tasks, tpl.Tasks)
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].OrderIndex < tasks[j].OrderIndex
	})

	pos := -1
	for i, t := range tasks {
		if t.ID == input.TaskID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return template.TemplateOutput{}, template.ErrTaskNotFound
	}

	other := pos - 1
	if input.Direction == template.ReorderDown {
		other = pos + 1
	}
	if other < 0 || other >= len(tasks) {
		return template.TemplateOutput{}, template.ErrAtBoundary
	}

	tasks[pos].OrderIndex, tasks[other].OrderIndex = tasks[other].OrderIndex, tasks[pos].OrderIndex

	updated, err := uc.repo.ReplaceTasks(ctx, sc.FirmID, tpl.ID, tasks)
	if err != nil {
		uc.l.Errorf(ctx, "template/usecase.Reorder: %v", err)
		return template.TemplateOutput{}, err
	}
	return template.TemplateOutput{Template: updated}, nil
}
