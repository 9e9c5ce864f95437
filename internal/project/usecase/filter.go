package usecase

import (
	"strings"
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
)

// filterProjects applies every populated filter with logical AND. Access to
// optional sub-records is nil-safe: a project missing the field a filter
// inspects simply does not match that filter.
func (uc *implUseCase) filterProjects(projects []model.ProjectWithRelations, f project.Filters) []model.ProjectWithRelations {
	out := make([]model.ProjectWithRelations, 0, len(projects))
	for _, p := range projects {
		if uc.matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func (uc *implUseCase) matches(p model.ProjectWithRelations, f project.Filters) bool {
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if len(f.Services) > 0 && !containsService(f.Services, p.ServiceType) {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, p.Status) {
		return false
	}
	if len(f.Priorities) > 0 && !containsPriority(f.Priorities, p.Priority) {
		return false
	}
	if len(f.ReturnTypes) > 0 {
		if p.TaxInfo == nil || !containsReturnType(f.ReturnTypes, p.TaxInfo.ReturnType) {
			return false
		}
	}
	if len(f.ReviewStatuses) > 0 {
		if p.TaxInfo == nil || !containsString(f.ReviewStatuses, p.TaxInfo.ReviewStatus) {
			return false
		}
	}
	if f.ClientID != "" && p.ClientID != f.ClientID {
		return false
	}

	if f.DueThisWeek || f.DueThisMonth || f.DueThisQuarter || f.DateRange != nil {
		deadline, ok := uc.Deadline(p.Project)
		if !ok {
			return false
		}
		deadline = uc.startOfDay(deadline)
		today := uc.startOfDay(uc.now())

		if f.DueThisWeek && !within(deadline, today, today.AddDate(0, 0, 7)) {
			return false
		}
		if f.DueThisMonth && !within(deadline, today, today.AddDate(0, 1, 0)) {
			return false
		}
		if f.DueThisQuarter && !within(deadline, today, today.AddDate(0, 3, 0)) {
			return false
		}
		if f.DateRange != nil && !within(deadline, uc.startOfDay(f.DateRange.From), uc.startOfDay(f.DateRange.To)) {
			return false
		}
	}
	return true
}

// matchesSearch checks the query case-insensitively against the project
// name, description, and client names.
func matchesSearch(p model.ProjectWithRelations, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	if p.Client != nil {
		if strings.Contains(strings.ToLower(p.Client.FullName), q) ||
			strings.Contains(strings.ToLower(p.Client.CompanyName), q) {
			return true
		}
	}
	if p.TaxInfo != nil &&
		strings.Contains(strings.ToLower(string(p.TaxInfo.ReturnType)), q) {
		return true
	}
	return false
}

// within reports from <= t <= to at day granularity.
func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func containsService(list []model.ServiceCategory, v model.ServiceCategory) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsStatus(list []model.ProjectStatus, v model.ProjectStatus) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsPriority(list []model.Priority, v model.Priority) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsReturnType(list []model.TaxReturnType, v model.TaxReturnType) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
