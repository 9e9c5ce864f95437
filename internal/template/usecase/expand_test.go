package usecase_test

import (
	"context"
	"testing"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/template"
)

func expandFixture() map[string]model.ProjectTemplate {
	return map[string]model.ProjectTemplate{
		"tpl-1": {
			ID:              "tpl-1",
			FirmID:          "f-1",
			Title:           "1040 Prep",
			DefaultPriority: model.PriorityHigh,
			Tasks: []model.TemplateTask{
				{ID: "a", Title: "Gather documents", EstimatedMinutes: 90, Priority: model.PriorityMedium, OrderIndex: 0},
				{ID: "b", Title: "Enter data", EstimatedMinutes: 45, OrderIndex: 1, Dependencies: []string{"a"}},
				{ID: "c", Title: "Review return", EstimatedMinutes: 20, OrderIndex: 2, Dependencies: []string{"b"}},
			},
		},
	}
}

func TestExpand_CreatesTasksUnderProject(t *testing.T) {
	repo := &mockRepo{templates: expandFixture()}
	tr := &mockTaskRepo{}
	uc := newTestUseCase(repo, tr)

	out, err := uc.Expand(context.Background(), testScope, template.ExpandInput{
		TemplateID: "tpl-1",
		ProjectID:  "p-1",
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(out.Tasks) != 3 {
		t.Fatalf("tasks = %d, want 3", len(out.Tasks))
	}

	for i, opt := range tr.createCalls {
		if opt.ProjectID != "p-1" {
			t.Errorf("task %d ProjectID = %q, want p-1", i, opt.ProjectID)
		}
		if opt.Status != model.TaskStatusTodo {
			t.Errorf("task %d Status = %q, want todo", i, opt.Status)
		}
	}

	// 90 minutes is 1.5 hours, 45 is 0.75, 20 rounds to 0.33.
	wantHours := []float64{1.5, 0.75, 0.33}
	for i, want := range wantHours {
		if got := tr.createCalls[i].EstimatedHours; got != want {
			t.Errorf("task %d EstimatedHours = %v, want %v", i, got, want)
		}
	}

	// Order and dependencies carry over unchanged.
	if tr.createCalls[1].OrderIndex != 1 {
		t.Errorf("task 1 OrderIndex = %d, want 1", tr.createCalls[1].OrderIndex)
	}
	if got := tr.createCalls[2].Dependencies; len(got) != 1 || got[0] != "b" {
		t.Errorf("task 2 Dependencies = %v, want [b]", got)
	}
}

func TestExpand_PriorityFallsBackToTemplateDefault(t *testing.T) {
	repo := &mockRepo{templates: expandFixture()}
	tr := &mockTaskRepo{}
	uc := newTestUseCase(repo, tr)

	if _, err := uc.Expand(context.Background(), testScope, template.ExpandInput{
		TemplateID: "tpl-1",
		ProjectID:  "p-1",
	}); err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	if tr.createCalls[0].Priority != model.PriorityMedium {
		t.Errorf("task 0 Priority = %q, want explicit medium", tr.createCalls[0].Priority)
	}
	if tr.createCalls[1].Priority != model.PriorityHigh {
		t.Errorf("task 1 Priority = %q, want template default high", tr.createCalls[1].Priority)
	}
}

func TestExpand_RequiresProject(t *testing.T) {
	repo := &mockRepo{templates: expandFixture()}
	tr := &mockTaskRepo{}
	uc := newTestUseCase(repo, tr)

	_, err := uc.Expand(context.Background(), testScope, template.ExpandInput{TemplateID: "tpl-1"})
	if err != template.ErrProjectRequired {
		t.Fatalf("Expand() error = %v, want ErrProjectRequired", err)
	}
	if len(tr.createCalls) != 0 {
		t.Fatalf("task Create called %d times, want 0", len(tr.createCalls))
	}
}

func TestExpand_TemplateNotFound(t *testing.T) {
	repo := &mockRepo{templates: map[string]model.ProjectTemplate{}}
	uc := newTestUseCase(repo, &mockTaskRepo{})

	_, err := uc.Expand(context.Background(), testScope, template.ExpandInput{
		TemplateID: "missing",
		ProjectID:  "p-1",
	})
	if err != template.ErrNotFound {
		t.Fatalf("Expand() error = %v, want ErrNotFound", err)
	}
}

func TestExpand_RejectsStoredCycle(t *testing.T) {
	repo := &mockRepo{templates: map[string]model.ProjectTemplate{
		"tpl-bad": {
			ID:     "tpl-bad",
			FirmID: "f-1",
			Title:  "Corrupted",
			Tasks: []model.TemplateTask{
				{ID: "a", Title: "First", Dependencies: []string{"b"}},
				{ID: "b", Title: "Second", Dependencies: []string{"a"}},
			},
		},
	}}
	tr := &mockTaskRepo{}
	uc := newTestUseCase(repo, tr)

	_, err := uc.Expand(context.Background(), testScope, template.ExpandInput{
		TemplateID: "tpl-bad",
		ProjectID:  "p-1",
	})
	if err != template.ErrCyclicDependency {
		t.Fatalf("Expand() error = %v, want ErrCyclicDependency", err)
	}
	if len(tr.createCalls) != 0 {
		t.Fatalf("task Create called %d times, want 0", len(tr.createCalls))
	}
}
