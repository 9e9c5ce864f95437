package usecase_test

import (
	"context"
	"errors"
	"testing"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
)

func TestCreate_Defaults(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo, nil)

	out, err := uc.Create(context.Background(), testScope, project.CreateInput{
		Name:     "2025 bookkeeping",
		ClientID: "c-1",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if out.Project.Status != model.ProjectStatusNotStarted {
		t.Errorf("Status = %q, want not_started", out.Project.Status)
	}
	if out.Project.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q, want medium", out.Project.Priority)
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	tests := []struct {
		name    string
		input   project.CreateInput
		wantErr error
	}{
		{"missing name", project.CreateInput{ClientID: "c-1"}, project.ErrNameRequired},
		{"blank name", project.CreateInput{Name: "   ", ClientID: "c-1"}, project.ErrNameRequired},
		{"missing client", project.CreateInput{Name: "x"}, project.ErrClientRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), testScope, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	_, err := uc.Update(context.Background(), testScope, project.UpdateInput{
		ID:   "missing",
		Name: strPtr("renamed"),
	})
	if !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestArchive_CascadesToTasks(t *testing.T) {
	repo := &mockRepo{projects: []model.ProjectWithRelations{
		{Project: model.Project{ID: "p-1", FirmID: "f-1", Name: "Old engagement"}},
	}}
	uc := newTestUseCase(repo, nil)

	if err := uc.Archive(context.Background(), testScope, "p-1"); err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if len(repo.archiveTasksCalls) != 1 {
		t.Fatalf("ArchiveTasks called %d times, want 1", len(repo.archiveTasksCalls))
	}
	if got := repo.archiveTasksCalls[0]; len(got) != 1 || got[0] != "p-1" {
		t.Errorf("ArchiveTasks ids = %v, want [p-1]", got)
	}
}

func TestArchive_NotFound(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo, nil)

	err := uc.Archive(context.Background(), testScope, "missing")
	if !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("Archive() error = %v, want ErrNotFound", err)
	}
	if len(repo.archiveTasksCalls) != 0 {
		t.Error("ArchiveTasks called for missing project")
	}
}
