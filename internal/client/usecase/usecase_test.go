package usecase_test

import (
	"context"
	"testing"

	"tax-practice-management/internal/client"
	"tax-practice-management/internal/client/repository"
	"tax-practice-management/internal/client/usecase"
	"tax-practice-management/internal/model"
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
	clients map[string]model.Client

	createCalls []repository.CreateOptions
	updateCalls []repository.UpdateOptions
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Client, error) {
	m.createCalls = append(m.createCalls, opt)
	return model.Client{
		ID:          "c-new",
		FirmID:      opt.FirmID,
		FullName:    opt.FullName,
		CompanyName: opt.CompanyName,
		Type:        opt.Type,
		Status:      opt.Status,
	}, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repository.GetOneOptions) (model.Client, error) {
	return m.clients[opt.ID], nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Client, error) {
	var out []model.Client
	for _, c := range m.clients {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, opt repository.UpdateOptions) (model.Client, error) {
	m.updateCalls = append(m.updateCalls, opt)
	return m.clients[opt.ID], nil
}

var testScope = model.Scope{UserID: "u-1", FirmID: "f-1", Role: "admin"}

func TestCreate_Defaults(t *testing.T) {
	repo := &mockRepo{clients: map[string]model.Client{}}
	uc := usecase.New(&mockLogger{}, repo)

	out, err := uc.Create(context.Background(), testScope, client.CreateInput{
		FullName: "Sarah Johnson",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if out.Client.Type != model.ClientTypeIndividual {
		t.Errorf("Type = %q, want individual", out.Client.Type)
	}
	if out.Client.Status != model.ClientStatusActive {
		t.Errorf("Status = %q, want active", out.Client.Status)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   client.CreateInput
		wantErr error
	}{
		{"missing names", client.CreateInput{Email: "a@b.com"}, client.ErrNameRequired},
		{"bad type", client.CreateInput{FullName: "X", Type: "partnership"}, client.ErrInvalidType},
		{"bad status", client.CreateInput{FullName: "X", Status: "deleted"}, client.ErrInvalidStatus},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockRepo{clients: map[string]model.Client{}}
			uc := usecase.New(&mockLogger{}, repo)

			_, err := uc.Create(context.Background(), testScope, tc.input)
			if err != tc.wantErr {
				t.Fatalf("Create() error = %v, want %v", err, tc.wantErr)
			}
			if len(repo.createCalls) != 0 {
				t.Fatalf("repository Create called %d times, want 0", len(repo.createCalls))
			}
		})
	}
}

func TestList_Search(t *testing.T) {
	repo := &mockRepo{clients: map[string]model.Client{
		"c-1": {ID: "c-1", FullName: "Sarah Johnson", Email: "sarah@example.com"},
		"c-2": {ID: "c-2", CompanyName: "Acme Corp", Email: "ap@acme.com"},
	}}
	uc := usecase.New(&mockLogger{}, repo)

	out, err := uc.List(context.Background(), testScope, client.ListInput{
		Filters: client.Filters{Search: "acme"},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if out.Total != 1 || out.Clients[0].ID != "c-2" {
		t.Fatalf("List() = %v, want only c-2", out.Clients)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockRepo{clients: map[string]model.Client{}}
	uc := usecase.New(&mockLogger{}, repo)

	_, err := uc.Update(context.Background(), testScope, client.UpdateInput{ID: "missing"})
	if err != client.ErrNotFound {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
	if len(repo.updateCalls) != 0 {
		t.Fatalf("repository Update called %d times, want 0", len(repo.updateCalls))
	}
}
