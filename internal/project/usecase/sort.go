package usecase

import (
	"sort"
	"strings"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
)

// statusRank orders statuses by workflow progression for sorting.
var statusRank = map[model.ProjectStatus]int{
	model.ProjectStatusNotStarted: 0,
	model.ProjectStatusTodo:       1,
	model.ProjectStatusInProgress: 2,
	model.ProjectStatusReview:     3,
	model.ProjectStatusBlocked:    4,
	model.ProjectStatusOnHold:     5,
	model.ProjectStatusCompleted:  6,
	model.ProjectStatusArchived:   7,
	model.ProjectStatusCancelled:  8,
}

var priorityRank = map[model.Priority]int{
	model.PriorityUrgent: 0,
	model.PriorityHigh:   1,
	model.PriorityMedium: 2,
	model.PriorityLow:    3,
}

// sortProjects orders the slice in place by the given spec. The sort is
// stable, so ties keep the repository's created_at order. Projects without
// a derivable deadline sort after everything that has one.
func (uc *implUseCase) sortProjects(projects []model.ProjectWithRelations, spec project.SortSpec) {
	if spec.Key == "" {
		return
	}
	desc := spec.Order == project.SortDesc

	sort.SliceStable(projects, func(i, j int) bool {
		less, eq := uc.compare(projects[i], projects[j], spec.Key)
		if eq {
			return false
		}
		if desc {
			return !less
		}
		return less
	})
}

// compare returns (i < j, i == j) for the given key.
func (uc *implUseCase) compare(a, b model.ProjectWithRelations, key project.SortKey) (bool, bool) {
	switch key {
	case project.SortByCreated:
		return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
	case project.SortByDue:
		da, okA := uc.Deadline(a.Project)
		db, okB := uc.Deadline(b.Project)
		if okA != okB {
			return okA, false
		}
		if !okA {
			return false, true
		}
		return da.Before(db), da.Equal(db)
	case project.SortByName:
		na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		return na < nb, na == nb
	case project.SortByStatus:
		ra, rb := statusRank[a.Status], statusRank[b.Status]
		return ra < rb, ra == rb
	case project.SortByPriority:
		ra, rb := priorityRank[a.Priority], priorityRank[b.Priority]
		return ra < rb, ra == rb
	case project.SortByEstimatedHours:
		ha, hb := a.EstimatedHours(), b.EstimatedHours()
		return ha < hb, ha == hb
	case project.SortByCompletion:
		ca, cb := a.CompletionPercent(), b.CompletionPercent()
		return ca < cb, ca == cb
	}
	return false, true
}
