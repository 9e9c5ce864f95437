package usecase_test

import (
	"context"
	"testing"
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
)

func TestList_GroupByStatusTitleCasesKeys(t *testing.T) {
	out := listProjects(t, project.ListInput{GroupBy: project.GroupByStatus})
	if len(out.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(out.Groups))
	}
	// Insertion order follows the fixture order: p-1 (in_progress) first.
	if out.Groups[0].Key != "In Progress" {
		t.Errorf("first group = %q, want %q", out.Groups[0].Key, "In Progress")
	}
	if out.Groups[1].Key != "Todo" {
		t.Errorf("second group = %q, want %q", out.Groups[1].Key, "Todo")
	}
	if len(out.Groups[0].Projects) != 2 {
		t.Errorf("In Progress has %d projects, want 2", len(out.Groups[0].Projects))
	}
}

func TestList_GroupByDeadlineBuckets(t *testing.T) {
	projects := []model.ProjectWithRelations{
		{Project: model.Project{ID: "overdue", DueDate: datePtr(2026, time.February, 1)}},
		{Project: model.Project{ID: "week", DueDate: datePtr(2026, time.February, 14)}},
		{Project: model.Project{ID: "month", DueDate: datePtr(2026, time.March, 5)}},
		{Project: model.Project{ID: "future", DueDate: datePtr(2026, time.August, 1)}},
		{Project: model.Project{ID: "none"}},
	}
	uc := newTestUseCase(&mockRepo{projects: projects}, nil)

	out, err := uc.List(context.Background(), testScope, project.ListInput{GroupBy: project.GroupByDeadline})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := map[string]string{
		"overdue": "Overdue",
		"week":    "Due This Week",
		"month":   "Due This Month",
		"future":  "Future",
		"none":    "No Due Date",
	}
	for _, g := range out.Groups {
		for _, p := range g.Projects {
			if want[p.ID] != g.Key {
				t.Errorf("project %s in bucket %q, want %q", p.ID, g.Key, want[p.ID])
			}
		}
	}
	if len(out.Groups) != 5 {
		t.Errorf("groups = %d, want 5", len(out.Groups))
	}
}

func TestList_GroupByClientUsesCompanyThenName(t *testing.T) {
	out := listProjects(t, project.ListInput{GroupBy: project.GroupByClient})

	keys := make(map[string]bool)
	for _, g := range out.Groups {
		keys[g.Key] = true
	}
	for _, want := range []string{"Amy Johnson", "Acme LLC", "No Client"} {
		if !keys[want] {
			t.Errorf("missing group %q, got %v", want, keys)
		}
	}
}

func TestList_GroupOrderFollowsSortedProjects(t *testing.T) {
	// Sorting by priority ascending puts p-3 (urgent, payroll) first, so
	// its bucket must lead the group list.
	out := listProjects(t, project.ListInput{
		Sort:    project.SortSpec{Key: project.SortByPriority, Order: project.SortAsc},
		GroupBy: project.GroupByService,
	})
	if out.Groups[0].Key != "Payroll" {
		t.Errorf("first group = %q, want %q", out.Groups[0].Key, "Payroll")
	}
}
