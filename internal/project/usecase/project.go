package usecase

import (
	"context"
	"strings"
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
	"tax-practice-management/internal/project/repository"
	"tax-practice-management/pkg/gcalendar"
)

// Create inserts a new project.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateInput) (project.ProjectOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return project.ProjectOutput{}, project.ErrNameRequired
	}
	if input.ClientID == "" {
		return project.ProjectOutput{}, project.ErrClientRequired
	}
	if input.Status == "" {
		input.Status = model.ProjectStatusNotStarted
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if input.ServiceType == "" {
		input.ServiceType = model.ServiceUncategorized
	}

	p, err := uc.repo.Create(ctx, repository.CreateOptions{
		FirmID:      sc.FirmID,
		ClientID:    input.ClientID,
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		ServiceType: input.ServiceType,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		TemplateID:  input.TemplateID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Create: %v", err)
		return project.ProjectOutput{}, err
	}

	uc.tryCreateDeadlineEvent(ctx, p)

	return project.ProjectOutput{Project: model.ProjectWithRelations{Project: p}}, nil
}

// tryCreateDeadlineEvent puts the project deadline on the firm's calendar.
// Failures are logged and never surface to the caller.
func (uc *implUseCase) tryCreateDeadlineEvent(ctx context.Context, p model.Project) {
	if uc.calendar == nil || p.DueDate == nil {
		return
	}

	start := p.DueDate.In(uc.loc)
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     "Deadline: " + p.Name,
		Description: p.Description,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    uc.loc.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "project/usecase.Create: calendar event for %q failed (non-fatal): %v", p.Name, err)
		return
	}
	uc.l.Infof(ctx, "project/usecase.Create: deadline event %s for project %s", event.ID, p.ID)
}

// List fetches the firm's projects then filters, sorts, and groups in memory.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input project.ListInput) (project.ListOutput, error) {
	projects, err := uc.repo.List(ctx, repository.ListOptions{
		FirmID:   sc.FirmID,
		ClientID: input.Filters.ClientID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.List: %v", err)
		return project.ListOutput{}, err
	}

	projects = uc.filterProjects(projects, input.Filters)
	uc.sortProjects(projects, input.Sort)

	out := project.ListOutput{Projects: projects, Total: len(projects)}
	if input.GroupBy != project.GroupByNone {
		out.Groups = uc.groupProjects(projects, input.GroupBy)
	}
	return out, nil
}

// Detail returns a single hydrated project.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.ProjectOutput, error) {
	projects, err := uc.repo.ListByIDs(ctx, sc.FirmID, []string{id})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Detail: %v", err)
		return project.ProjectOutput{}, err
	}
	if len(projects) == 0 {
		return project.ProjectOutput{}, project.ErrNotFound
	}
	return project.ProjectOutput{Project: projects[0]}, nil
}

// Update applies a partial update to one project.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input project.UpdateInput) (project.ProjectOutput, error) {
	if input.Status != nil && !model.ValidProjectStatus(*input.Status) {
		return project.ProjectOutput{}, project.ErrInvalidStatus
	}

	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Update: %v", err)
		return project.ProjectOutput{}, err
	}
	if existing.ID == "" {
		return project.ProjectOutput{}, project.ErrNotFound
	}

	p, err := uc.repo.Update(ctx, repository.UpdateOptions{
		FirmID:      sc.FirmID,
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Stage:       input.Stage,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Update: %v", err)
		return project.ProjectOutput{}, err
	}
	return project.ProjectOutput{Project: model.ProjectWithRelations{Project: p}}, nil
}

// Archive soft-deletes a project and archives every task under it.
func (uc *implUseCase) Archive(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{FirmID: sc.FirmID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Archive: %v", err)
		return err
	}
	if existing.ID == "" {
		return project.ErrNotFound
	}

	archived := string(model.ProjectStatusArchived)
	if _, err := uc.repo.Update(ctx, repository.UpdateOptions{
		FirmID: sc.FirmID,
		ID:     id,
		Status: &archived,
	}); err != nil {
		uc.l.Errorf(ctx, "project/usecase.Archive: %v", err)
		return err
	}

	if _, err := uc.repo.ArchiveTasks(ctx, sc.FirmID, []string{id}); err != nil {
		uc.l.Errorf(ctx, "project/usecase.Archive: archive tasks: %v", err)
		return err
	}
	return nil
}
