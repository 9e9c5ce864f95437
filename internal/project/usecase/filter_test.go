package usecase_test

import (
	"context"
	"testing"
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
)

func fixtureProjects() []model.ProjectWithRelations {
	return []model.ProjectWithRelations{
		{
			Project: model.Project{
				ID: "p-1", Name: "Johnson 1040", Status: model.ProjectStatusInProgress,
				Priority: model.PriorityHigh, ServiceType: model.ServiceTaxReturn,
				DueDate:   datePtr(2026, time.February, 12),
				TaxInfo:   &model.TaxInfo{ReturnType: model.TaxReturn1040, ReviewStatus: "in_review"},
				ClientID:  "c-1",
				CreatedAt: date(2026, time.January, 1),
			},
			Client: &model.ProjectClient{ID: "c-1", FullName: "Amy Johnson"},
		},
		{
			Project: model.Project{
				ID: "p-2", Name: "Acme bookkeeping", Status: model.ProjectStatusTodo,
				Priority: model.PriorityLow, ServiceType: model.ServiceBookkeeping,
				ClientID:  "c-2",
				CreatedAt: date(2026, time.January, 2),
			},
			Client: &model.ProjectClient{ID: "c-2", FullName: "Bob Lee", CompanyName: "Acme LLC"},
		},
		{
			Project: model.Project{
				ID: "p-3", Name: "Payroll run", Status: model.ProjectStatusInProgress,
				Priority: model.PriorityUrgent, ServiceType: model.ServicePayroll,
				PayrollInfo: &model.PayrollInfo{NextPayrollDate: datePtr(2026, time.March, 1)},
				ClientID:    "c-2",
				CreatedAt:   date(2026, time.January, 3),
			},
		},
	}
}

func listProjects(t *testing.T, input project.ListInput) project.ListOutput {
	t.Helper()
	uc := newTestUseCase(&mockRepo{projects: fixtureProjects()}, nil)
	out, err := uc.List(context.Background(), testScope, input)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	return out
}

func ids(projects []model.ProjectWithRelations) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestList_FiltersCombineWithAnd(t *testing.T) {
	out := listProjects(t, project.ListInput{Filters: project.Filters{
		Statuses: []model.ProjectStatus{model.ProjectStatusInProgress},
		ClientID: "c-2",
	}})
	if got := ids(out.Projects); len(got) != 1 || got[0] != "p-3" {
		t.Errorf("projects = %v, want [p-3]", got)
	}
}

func TestList_SearchMatchesClientNames(t *testing.T) {
	tcs := []struct {
		query string
		want  []string
	}{
		{"johnson", []string{"p-1"}},
		{"ACME", []string{"p-2"}},
		{"payroll", []string{"p-3"}},
		{"nothing-matches", nil},
	}
	for _, tc := range tcs {
		t.Run(tc.query, func(t *testing.T) {
			out := listProjects(t, project.ListInput{Filters: project.Filters{Search: tc.query}})
			got := ids(out.Projects)
			if len(got) != len(tc.want) {
				t.Fatalf("projects = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("projects = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestList_ReturnTypeFilterIsNilSafe(t *testing.T) {
	// p-2 and p-3 have no tax info and must not match, not panic.
	out := listProjects(t, project.ListInput{Filters: project.Filters{
		ReturnTypes: []model.TaxReturnType{model.TaxReturn1040},
	}})
	if got := ids(out.Projects); len(got) != 1 || got[0] != "p-1" {
		t.Errorf("projects = %v, want [p-1]", got)
	}
}

func TestList_DueThisWeekUsesDerivedDeadline(t *testing.T) {
	// Clock is 2026-02-10. p-1 is due 02-12 (this week); p-3 derives
	// 03-01 from payroll info; p-2 has no deadline at all.
	out := listProjects(t, project.ListInput{Filters: project.Filters{DueThisWeek: true}})
	if got := ids(out.Projects); len(got) != 1 || got[0] != "p-1" {
		t.Errorf("projects = %v, want [p-1]", got)
	}

	out = listProjects(t, project.ListInput{Filters: project.Filters{DueThisMonth: true}})
	if got := ids(out.Projects); len(got) != 2 {
		t.Errorf("projects = %v, want [p-1 p-3]", got)
	}
}

func TestList_DateRangeExcludesProjectsWithoutDeadline(t *testing.T) {
	out := listProjects(t, project.ListInput{Filters: project.Filters{
		DateRange: &project.DateRange{
			From: date(2026, time.January, 1),
			To:   date(2026, time.December, 31),
		},
	}})
	for _, p := range out.Projects {
		if p.ID == "p-2" {
			t.Error("p-2 has no deadline and must not match a date range")
		}
	}
}

func TestList_SortByPriorityDescIsStable(t *testing.T) {
	out := listProjects(t, project.ListInput{
		Sort: project.SortSpec{Key: project.SortByPriority, Order: project.SortAsc},
	})
	// urgent < high < low in rank order.
	want := []string{"p-3", "p-1", "p-2"}
	got := ids(out.Projects)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestList_SortByDuePutsMissingDeadlinesLast(t *testing.T) {
	out := listProjects(t, project.ListInput{
		Sort: project.SortSpec{Key: project.SortByDue, Order: project.SortAsc},
	})
	got := ids(out.Projects)
	if got[len(got)-1] != "p-2" {
		t.Errorf("order = %v, want p-2 last", got)
	}
}
