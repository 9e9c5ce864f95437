package usecase_test

import (
	"context"
	"testing"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/template"
)

func reorderFixture() map[string]model.ProjectTemplate {
	return map[string]model.ProjectTemplate{
		"tpl-1": {
			ID:     "tpl-1",
			FirmID: "f-1",
			Title:  "Payroll Run",
			Tasks: []model.TemplateTask{
				{ID: "a", Title: "Collect hours", OrderIndex: 0},
				{ID: "b", Title: "Process payroll", OrderIndex: 1},
				{ID: "c", Title: "File 941", OrderIndex: 2},
			},
		},
	}
}

func orderOf(tasks []model.TemplateTask, id string) int {
	for _, t := range tasks {
		if t.ID == id {
			return t.OrderIndex
		}
	}
	return -1
}

func TestReorder_SwapsWithNeighbor(t *testing.T) {
	repo := &mockRepo{templates: reorderFixture()}
	uc := newTestUseCase(repo, &mockTaskRepo{})

	out, err := uc.Reorder(context.Background(), testScope, template.ReorderInput{
		TemplateID: "tpl-1",
		TaskID:     "b",
		Direction:  template.ReorderUp,
	})
	if err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}
	if got := orderOf(out.Template.Tasks, "b"); got != 0 {
		t.Errorf("task b OrderIndex = %d, want 0", got)
	}
	if got := orderOf(out.Template.Tasks, "a"); got != 1 {
		t.Errorf("task a OrderIndex = %d, want 1", got)
	}
	if got := orderOf(out.Template.Tasks, "c"); got != 2 {
		t.Errorf("task c OrderIndex = %d, want 2", got)
	}
}

func TestReorder_Down(t *testing.T) {
	repo := &mockRepo{templates: reorderFixture()}
	uc := newTestUseCase(repo, &mockTaskRepo{})

	out, err := uc.Reorder(context.Background(), testScope, template.ReorderInput{
		TemplateID: "tpl-1",
		TaskID:     "b",
		Direction:  template.ReorderDown,
	})
	if err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}
	if got := orderOf(out.Template.Tasks, "b"); got != 2 {
		t.Errorf("task b OrderIndex = %d, want 2", got)
	}
	if got := orderOf(out.Template.Tasks, "c"); got != 1 {
		t.Errorf("task c OrderIndex = %d, want 1", got)
	}
}

func TestReorder_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		taskID    string
		direction template.ReorderDirection
	}{
		{"first task up", "a", template.ReorderUp},
		{"last task down", "c", template.ReorderDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockRepo{templates: reorderFixture()}
			uc := newTestUseCase(repo, &mockTaskRepo{})

			_, err := uc.Reorder(context.Background(), testScope, template.ReorderInput{
				TemplateID: "tpl-1",
				TaskID:     tc.taskID,
				Direction:  tc.direction,
			})
			if err != template.ErrAtBoundary {
				t.Fatalf("Reorder() error = %v, want ErrAtBoundary", err)
			}
			if len(repo.replaceCalls) != 0 {
				t.Fatalf("ReplaceTasks called %d times, want 0", len(repo.replaceCalls))
			}
		})
	}
}

func TestReorder_Invalid(t *testing.T) {
	repo := &mockRepo{templates: reorderFixture()}
	uc := newTestUseCase(repo, &mockTaskRepo{})

	_, err := uc.Reorder(context.Background(), testScope, template.ReorderInput{
		TemplateID: "tpl-1",
		TaskID:     "b",
		Direction:  "sideways",
	})
	if err != template.ErrInvalidDirection {
		t.Fatalf("Reorder() error = %v, want ErrInvalidDirection", err)
	}

	_, err = uc.Reorder(context.Background(), testScope, template.ReorderInput{
		TemplateID: "tpl-1",
		TaskID:     "missing",
		Direction:  template.ReorderUp,
	})
	if err != template.ErrTaskNotFound {
		t.Fatalf("Reorder() error = %v, want ErrTaskNotFound", err)
	}
}
