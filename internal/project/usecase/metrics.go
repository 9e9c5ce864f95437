package usecase

import (
	"context"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
	"tax-practice-management/internal/project/repository"
)

// Metrics computes aggregate counts over the filtered project set.
func (uc *implUseCase) Metrics(ctx context.Context, sc model.Scope, filters project.Filters) (project.MetricsOutput, error) {
	projects, err := uc.repo.List(ctx, repository.ListOptions{
		FirmID:   sc.FirmID,
		ClientID: filters.ClientID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Metrics: %v", err)
		return project.MetricsOutput{}, err
	}
	projects = uc.filterProjects(projects, filters)

	out := project.MetricsOutput{
		TotalProjects: len(projects),
		ByService:     make(map[model.ServiceCategory]int),
		ByStatus:      make(map[model.ProjectStatus]int),
		ByPriority:    make(map[model.Priority]int),
	}
	for _, p := range projects {
		out.ByStatus[p.Status]++
		out.ByPriority[p.Priority]++
		service := p.ServiceType
		if service == "" {
			service = model.ServiceUncategorized
		}
		out.ByService[service]++
		if p.Status == model.ProjectStatusCompleted {
			out.CompletedProjects++
		}
	}
	if out.TotalProjects > 0 {
		out.CompletionRate = float64(out.CompletedProjects) / float64(out.TotalProjects) * 100
	}
	return out, nil
}
