package usecase_test

import (
	"context"
	"errors"
	"testing"

	"tax-practice-management/internal/model"
	projectRepo "tax-practice-management/internal/project/repository"
	"tax-practice-management/internal/taxreturn"
	"tax-practice-management/internal/taxreturn/repository"
	"tax-practice-management/internal/taxreturn/usecase"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type mockRepo struct {
	returns map[string]model.TaxReturn

	updateCalls []repository.UpdateOptions
	failUpdate  bool
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.TaxReturn, error) {
	return model.TaxReturn{
		ID:         "r-new",
		FirmID:     opt.FirmID,
		ClientID:   opt.ClientID,
		ReturnType: opt.ReturnType,
		TaxYear:    opt.TaxYear,
		Status:     opt.Status,
	}, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repository.GetOneOptions) (model.TaxReturn, error) {
	return m.returns[opt.ID], nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.TaxReturn, error) {
	var out []model.TaxReturn
	for _, t := range m.returns {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, opt repository.UpdateOptions) (model.TaxReturn, error) {
	m.updateCalls = append(m.updateCalls, opt)
	if m.failUpdate {
		return model.TaxReturn{}, errors.New("update failed")
	}
	t := m.returns[opt.ID]
	if opt.Status != nil {
		t.Status = model.TaxReturnStatus(*opt.Status)
	}
	return t, nil
}

type mockProjectRepo struct {
	updateCalls []projectRepo.UpdateOptions
	failUpdate  bool
}

func (m *mockProjectRepo) Create(ctx context.Context, opt projectRepo.CreateOptions) (model.Project, error) {
	return model.Project{}, nil
}

func (m *mockProjectRepo) GetOne(ctx context.Context, opt projectRepo.GetOneOptions) (model.Project, error) {
	return model.Project{}, nil
}

func (m *mockProjectRepo) List(ctx context.Context, opt projectRepo.ListOptions) ([]model.ProjectWithRelations, error) {
	return nil, nil
}

func (m *mockProjectRepo) Update(ctx context.Context, opt projectRepo.UpdateOptions) (model.Project, error) {
	m.updateCalls = append(m.updateCalls, opt)
	if m.failUpdate {
		return model.Project{}, errors.New("project update failed")
	}
	return model.Project{ID: opt.ID}, nil
}

func (m *mockProjectRepo) BulkUpdate(ctx context.Context, opt projectRepo.BulkUpdateOptions) (int64, error) {
	return 0, nil
}

func (m *mockProjectRepo) ArchiveTasks(ctx context.Context, firmID string, projectIDs []string) (int64, error) {
	return 0, nil
}

func (m *mockProjectRepo) ListByIDs(ctx context.Context, firmID string, ids []string) ([]model.ProjectWithRelations, error) {
	return nil, nil
}

type mockHooks struct {
	begin, commit, rollback int
}

func (m *mockHooks) Begin(ctx context.Context) projectRepo.HookResult {
	m.begin++
	return projectRepo.HookOK
}

func (m *mockHooks) Commit(ctx context.Context) projectRepo.HookResult {
	m.commit++
	return projectRepo.HookOK
}

func (m *mockHooks) Rollback(ctx context.Context) projectRepo.HookResult {
	m.rollback++
	return projectRepo.HookOK
}

var testScope = model.Scope{UserID: "u-1", FirmID: "f-1", Role: "admin"}

func strPtr(s string) *string { return &s }

func TestUpdate_CompletedCascadesToProject(t *testing.T) {
	repo := &mockRepo{returns: map[string]model.TaxReturn{
		"r-1": {ID: "r-1", FirmID: "f-1", ClientID: "c-1", ProjectID: "p-1",
			Status: model.TaxReturnStatusInProgress},
	}}
	pr := &mockProjectRepo{}
	hooks := &mockHooks{}
	uc := usecase.New(&mockLogger{}, repo, pr, hooks)

	out, err := uc.Update(context.Background(), testScope, taxreturn.UpdateInput{
		ID:     "r-1",
		Status: strPtr("completed"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if out.Return.Status != model.TaxReturnStatusCompleted {
		t.Errorf("Status = %q, want completed", out.Return.Status)
	}
	if len(pr.updateCalls) != 1 {
		t.Fatalf("project Update called %d times, want 1", len(pr.updateCalls))
	}
	if pr.updateCalls[0].ID != "p-1" || *pr.updateCalls[0].Status != "completed" {
		t.Errorf("project cascade = %+v, want p-1 completed", pr.updateCalls[0])
	}
	if hooks.begin != 1 || hooks.commit != 1 || hooks.rollback != 0 {
		t.Errorf("hooks = %d/%d/%d, want 1/1/0", hooks.begin, hooks.commit, hooks.rollback)
	}
}

func TestUpdate_NoCascadeWithoutProject(t *testing.T) {
	repo := &mockRepo{returns: map[string]model.TaxReturn{
		"r-1": {ID: "r-1", FirmID: "f-1", ClientID: "c-1",
			Status: model.TaxReturnStatusInProgress},
	}}
	pr := &mockProjectRepo{}
	hooks := &mockHooks{}
	uc := usecase.New(&mockLogger{}, repo, pr, hooks)

	if _, err := uc.Update(context.Background(), testScope, taxreturn.UpdateInput{
		ID:     "r-1",
		Status: strPtr("completed"),
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(pr.updateCalls) != 0 {
		t.Errorf("project Update called %d times, want 0", len(pr.updateCalls))
	}
	if hooks.begin != 0 {
		t.Errorf("hooks begin = %d, want 0", hooks.begin)
	}
}

func TestUpdate_NoCascadeWhenAlreadyCompleted(t *testing.T) {
	repo := &mockRepo{returns: map[string]model.TaxReturn{
		"r-1": {ID: "r-1", FirmID: "f-1", ClientID: "c-1", ProjectID: "p-1",
			Status: model.TaxReturnStatusCompleted},
	}}
	pr := &mockProjectRepo{}
	uc := usecase.New(&mockLogger{}, repo, pr, &mockHooks{})

	if _, err := uc.Update(context.Background(), testScope, taxreturn.UpdateInput{
		ID:     "r-1",
		Status: strPtr("completed"),
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(pr.updateCalls) != 0 {
		t.Errorf("project Update called %d times, want 0", len(pr.updateCalls))
	}
}

func TestUpdate_RollbackOnCascadeFailure(t *testing.T) {
	repo := &mockRepo{returns: map[string]model.TaxReturn{
		"r-1": {ID: "r-1", FirmID: "f-1", ClientID: "c-1", ProjectID: "p-1",
			Status: model.TaxReturnStatusInProgress},
	}}
	pr := &mockProjectRepo{failUpdate: true}
	hooks := &mockHooks{}
	uc := usecase.New(&mockLogger{}, repo, pr, hooks)

	_, err := uc.Update(context.Background(), testScope, taxreturn.UpdateInput{
		ID:     "r-1",
		Status: strPtr("completed"),
	})
	if err == nil {
		t.Fatal("Update() error = nil, want cascade failure")
	}
	if hooks.rollback != 1 || hooks.commit != 0 {
		t.Errorf("hooks rollback/commit = %d/%d, want 1/0", hooks.rollback, hooks.commit)
	}
}

func TestUpdate_InvalidStatus(t *testing.T) {
	repo := &mockRepo{returns: map[string]model.TaxReturn{}}
	uc := usecase.New(&mockLogger{}, repo, &mockProjectRepo{}, &mockHooks{})

	_, err := uc.Update(context.Background(), testScope, taxreturn.UpdateInput{
		ID:     "r-1",
		Status: strPtr("shredded"),
	})
	if err != taxreturn.ErrInvalidStatus {
		t.Fatalf("Update() error = %v, want ErrInvalidStatus", err)
	}
	if len(repo.updateCalls) != 0 {
		t.Fatalf("repository Update called %d times, want 0", len(repo.updateCalls))
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{returns: map[string]model.TaxReturn{}},
		&mockProjectRepo{}, &mockHooks{})

	tests := []struct {
		name    string
		input   taxreturn.CreateInput
		wantErr error
	}{
		{"missing client", taxreturn.CreateInput{TaxYear: 2025}, taxreturn.ErrClientRequired},
		{"bad year", taxreturn.CreateInput{ClientID: "c-1", TaxYear: 10}, taxreturn.ErrInvalidYear},
		{"bad status", taxreturn.CreateInput{ClientID: "c-1", TaxYear: 2025, Status: "lost"}, taxreturn.ErrInvalidStatus},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), testScope, tc.input)
			if err != tc.wantErr {
				t.Fatalf("Create() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreate_Defaults(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockRepo{returns: map[string]model.TaxReturn{}},
		&mockProjectRepo{}, &mockHooks{})

	out, err := uc.Create(context.Background(), testScope, taxreturn.CreateInput{
		ClientID: "c-1",
		TaxYear:  2025,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if out.Return.ReturnType != model.TaxReturnOther {
		t.Errorf("ReturnType = %q, want other", out.Return.ReturnType)
	}
	if out.Return.Status != model.TaxReturnStatusNotStarted {
		t.Errorf("Status = %q, want not_started", out.Return.Status)
	}
}
