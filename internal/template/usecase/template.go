package usecase

import (
	"context"
	"strings"

	"tax-practice-management/internal/model"
	taskDomain "tax-practice-management/internal/task"
	"tax-practice-management/internal/template"
	"tax-practice-management/internal/template/repository"
)

// Create inserts a new template after validating its task graph. Cycle and
// dependency problems are rejected at save time, before any expansion can
// propagate them into a project.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input template.CreateInput) (template.TemplateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return template.TemplateOutput{}, template.ErrTitleRequired
	}
	if err := uc.validateTaskGraph(input.Tasks); err != nil {
		return template.TemplateOutput{}, err
	}
	if input.DefaultPriority == "" {
		input.DefaultPriority = model.PriorityMedium
	}

	tpl, err := uc.repo.Create(ctx, repository.CreateOptions{
		FirmID:            sc.FirmID,
		Title:             input.Title,
		Description:       input.Description,
		Category:          input.Category,
		DefaultPriority:   input.DefaultPriority,
		RecurringSchedule: input.RecurringSchedule,
		SeasonalPriority:  input.SeasonalPriority,
		Tasks:             templateTasks(input.Tasks),
	})
	if err != nil {
		uc.l.Errorf(ctx, "template/usecase.Create: %v", err)
		return template.TemplateOutput{}, err
	}
	return template.TemplateOutput{Template: tpl}, nil
}

// List returns the firm's templates.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (template.ListOutput, error) {
	templates, err := uc.repo.List(ctx, sc.FirmID)
	if err != nil {
		uc.l.Errorf(ctx, "template/usecase.List: %v", err)
		return template.ListOutput{}, err
	}
	return template.ListOutput{Templates: templates, Total: len(templates)}, nil
}

// Detail returns a single template with its tasks.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (template.TemplateOutput, error) {
	tpl, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "template/usecase.Detail: %v", err)
		return template.TemplateOutput{}, err
	}
	if tpl.ID == "" {
		return template.TemplateOutput{}, template.ErrNotFound
	}
	return template.TemplateOutput{Template: tpl}, nil
}

// Update applies a partial update. A non-nil Tasks slice replaces the task
// list and is revalidated as a whole graph first.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input template.UpdateInput) (template.TemplateOutput, error) {
	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "template/usecase.Update: %v", err)
		return template.TemplateOutput{}, err
	}
	if existing.ID == "" {
		return template.TemplateOutput{}, template.ErrNotFound
	}

	if input.Tasks != nil {
		if err := uc.validateTaskGraph(input.Tasks); err != nil {
			return template.TemplateOutput{}, err
		}
	}

	tpl, err := uc.repo.Update(ctx, repository.UpdateOptions{
		FirmID:            sc.FirmID,
		ID:                input.ID,
		Title:             input.Title,
		Description:       input.Description,
		Category:          input.Category,
		DefaultPriority:   input.DefaultPriority,
		RecurringSchedule: input.RecurringSchedule,
		SeasonalPriority:  input.SeasonalPriority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "template/usecase.Update: %v", err)
		return template.TemplateOutput{}, err
	}

	if input.Tasks != nil {
		tpl, err = uc.repo.ReplaceTasks(ctx, sc.FirmID, input.ID, templateTasks(input.Tasks))
		if err != nil {
			uc.l.Errorf(ctx, "template/usecase.Update tasks: %v", err)
			return template.TemplateOutput{}, err
		}
	}
	return template.TemplateOutput{Template: tpl}, nil
}

// Delete removes a template and its tasks.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: id})
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return template.ErrNotFound
	}
	return uc.repo.Delete(ctx, sc.FirmID, id)
}

// validateTaskGraph runs set validation over the template's tasks and maps
// graph problems to template errors.
func (uc *implUseCase) validateTaskGraph(tasks []template.TaskInput) error {
	drafts := make([]taskDomain.Draft, len(tasks))
	for i, t := range tasks {
		drafts[i] = taskDomain.Draft{
			ID:           t.ID,
			Title:        t.Title,
			Dependencies: t.Dependencies,
		}
	}

	issues := uc.taskUC.ValidateSet(drafts)
	for _, issue := range issues {
		switch issue.Type {
		case taskDomain.IssueCircular:
			return template.ErrCyclicDependency
		case taskDomain.IssueDependency:
			return template.ErrUnknownDependency
		case taskDomain.IssueRequired:
			return template.ErrTitleRequired
		}
	}
	// Duplicate titles are tolerated inside templates; date rules do not
	// apply since template tasks carry no dates.
	return nil
}

func templateTasks(inputs []template.TaskInput) []model.TemplateTask {
	tasks := make([]model.TemplateTask, len(inputs))
	for i, t := range inputs {
		tasks[i] = model.TemplateTask{
			ID:               t.ID,
			Title:            t.Title,
			Description:      t.Description,
			EstimatedMinutes: t.EstimatedMinutes,
			Priority:         t.Priority,
			OrderIndex:       t.OrderIndex,
			Dependencies:     t.Dependencies,
		}
	}
	return tasks
}
