package usecase

import (
	"strings"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
)

// Deadline bucket names, coarsest last.
const (
	bucketOverdue      = "Overdue"
	bucketDueThisWeek  = "Due This Week"
	bucketDueThisMonth = "Due This Month"
	bucketFuture       = "Future"
	bucketNoDueDate    = "No Due Date"
)

// groupProjects partitions projects into named buckets. Buckets are created
// lazily and listed in the order their first member was encountered, so the
// incoming sort order decides bucket order too.
func (uc *implUseCase) groupProjects(projects []model.ProjectWithRelations, by project.GroupBy) []project.Group {
	index := make(map[string]int)
	var groups []project.Group

	for _, p := range projects {
		key := uc.groupKey(p, by)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, project.Group{Key: key})
		}
		groups[i].Projects = append(groups[i].Projects, p)
	}
	return groups
}

func (uc *implUseCase) groupKey(p model.ProjectWithRelations, by project.GroupBy) string {
	switch by {
	case project.GroupByStatus:
		return titleCase(string(p.Status))
	case project.GroupByService:
		if p.ServiceType == "" {
			return titleCase(string(model.ServiceUncategorized))
		}
		return titleCase(string(p.ServiceType))
	case project.GroupByDeadline:
		return uc.deadlineBucket(p.Project)
	case project.GroupByClient:
		if p.Client == nil {
			return "No Client"
		}
		if p.Client.CompanyName != "" {
			return p.Client.CompanyName
		}
		return p.Client.FullName
	}
	return "All"
}

func (uc *implUseCase) deadlineBucket(p model.Project) string {
	deadline, ok := uc.Deadline(p)
	if !ok {
		return bucketNoDueDate
	}
	deadline = uc.startOfDay(deadline)
	today := uc.startOfDay(uc.now())

	switch {
	case deadline.Before(today):
		return bucketOverdue
	case !deadline.After(today.AddDate(0, 0, 7)):
		return bucketDueThisWeek
	case !deadline.After(today.AddDate(0, 1, 0)):
		return bucketDueThisMonth
	default:
		return bucketFuture
	}
}

// titleCase turns an enum value like "in_progress" into "In Progress".
func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
