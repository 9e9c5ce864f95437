package usecase

import (
	"context"
	"math"

	"tax-practice-management/internal/model"
	taskRepo "tax-practice-management/internal/task/repository"
	"tax-practice-management/internal/template"
	"tax-practice-management/internal/template/repository"
)

// Expand instantiates the template's tasks under a project. Estimated minutes
// become estimated hours rounded to two decimals, statuses start at todo, and
// order and dependencies carry over unchanged.
func (uc *implUseCase) Expand(ctx context.Context, sc model.Scope, input template.ExpandInput) (template.ExpandOutput, error) {
	if input.ProjectID == "" {
		return template.ExpandOutput{}, template.ErrProjectRequired
	}

	tpl, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: input.TemplateID})
	if err != nil {
		uc.l.Errorf(ctx, "template/usecase.Expand: %v", err)
		return template.ExpandOutput{}, err
	}
	if tpl.ID == "" {
		return template.ExpandOutput{}, template.ErrNotFound
	}

	// Stored templates should already be acyclic, but re-check before
	// creating anything so a bad row cannot seed an unworkable project.
	if err := uc.validateStoredGraph(tpl.Tasks); err != nil {
		return template.ExpandOutput{}, err
	}

	tasks := make([]model.Task, 0, len(tpl.Tasks))
	for _, tt := range tpl.Tasks {
		priority := tt.Priority
		if priority == "" {
			priority = tpl.DefaultPriority
		}

		created, err := uc.taskRepo.Create(ctx, taskRepo.CreateOptions{
			FirmID:         sc.FirmID,
			ProjectID:      input.ProjectID,
			Title:          tt.Title,
			Description:    tt.Description,
			Status:         model.TaskStatusTodo,
			Priority:       priority,
			EstimatedHours: minutesToHours(tt.EstimatedMinutes),
			Dependencies:   tt.Dependencies,
			OrderIndex:     tt.OrderIndex,
		})
		if err != nil {
			uc.l.Errorf(ctx, "template/usecase.Expand create task: %v", err)
			return template.ExpandOutput{}, err
		}
		tasks = append(tasks, created)
	}

	uc.l.Infof(ctx, "template/usecase.Expand: created %d tasks from template %s", len(tasks), tpl.ID)
	return template.ExpandOutput{Tasks: tasks}, nil
}

// validateStoredGraph checks a persisted task list the same way save-time
// validation does.
func (uc *implUseCase) validateStoredGraph(tasks []model.TemplateTask) error {
	inputs := make([]template.TaskInput, len(tasks))
	for i, t := range tasks {
		inputs[i] = template.TaskInput{
			ID:           t.ID,
			Title:        t.Title,
			Dependencies: t.Dependencies,
		}
	}
	return uc.validateTaskGraph(inputs)
}

// minutesToHours converts an estimate to hours at two-decimal precision.
func minutesToHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
