package usecase_test

import (
	"context"
	"errors"
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
	"tax-practice-management/internal/project/repository"
	"tax-practice-management/internal/project/usecase"
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
	projects []model.ProjectWithRelations

	failBulkUpdate   bool
	failArchiveTasks bool
	failListByIDs    bool

	bulkUpdateCalls   []repository.BulkUpdateOptions
	archiveTasksCalls [][]string
	listByIDsCalls    [][]string
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Project, error) {
	return model.Project{
		ID:       "p-new",
		FirmID:   opt.FirmID,
		ClientID: opt.ClientID,
		Name:     opt.Name,
		Status:   opt.Status,
		Priority: opt.Priority,
	}, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repository.GetOneOptions) (model.Project, error) {
	for _, p := range m.projects {
		if p.ID == opt.ID {
			return p.Project, nil
		}
	}
	return model.Project{}, nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.ProjectWithRelations, error) {
	return m.projects, nil
}

func (m *mockRepo) Update(ctx context.Context, opt repository.UpdateOptions) (model.Project, error) {
	p, _ := m.GetOne(ctx, repository.GetOneOptions{FirmID: opt.FirmID, ID: opt.ID})
	if opt.Status != nil {
		p.Status = model.ProjectStatus(*opt.Status)
	}
	if opt.Name != nil {
		p.Name = *opt.Name
	}
	return p, nil
}

func (m *mockRepo) BulkUpdate(ctx context.Context, opt repository.BulkUpdateOptions) (int64, error) {
	m.bulkUpdateCalls = append(m.bulkUpdateCalls, opt)
	if m.failBulkUpdate {
		return 0, errors.New("db error")
	}
	return int64(len(opt.ProjectIDs)), nil
}

func (m *mockRepo) ArchiveTasks(ctx context.Context, firmID string, projectIDs []string) (int64, error) {
	m.archiveTasksCalls = append(m.archiveTasksCalls, projectIDs)
	if m.failArchiveTasks {
		return 0, errors.New("cascade error")
	}
	return int64(len(projectIDs) * 2), nil
}

func (m *mockRepo) ListByIDs(ctx context.Context, firmID string, ids []string) ([]model.ProjectWithRelations, error) {
	m.listByIDsCalls = append(m.listByIDsCalls, ids)
	if m.failListByIDs {
		return nil, errors.New("refetch error")
	}
	var out []model.ProjectWithRelations
	for _, p := range m.projects {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type mockHooks struct {
	begin, commit, rollback repository.HookResult

	beginCalls, commitCalls, rollbackCalls int
}

func (m *mockHooks) Begin(ctx context.Context) repository.HookResult {
	m.beginCalls++
	return m.begin
}

func (m *mockHooks) Commit(ctx context.Context) repository.HookResult {
	m.commitCalls++
	return m.commit
}

func (m *mockHooks) Rollback(ctx context.Context) repository.HookResult {
	m.rollbackCalls++
	return m.rollback
}

// fixedNow is the reference clock used across deadline tests.
// Tuesday 2026-02-10, between the January and April estimated dates.
var fixedNow = time.Date(2026, time.February, 10, 9, 30, 0, 0, time.UTC)

func newTestUseCase(repo repository.Repository, hooks repository.TxHooks) project.UseCase {
	if hooks == nil {
		hooks = &mockHooks{}
	}
	return usecase.New(&mockLogger{}, repo, hooks, usecase.Config{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func strPtr(s string) *string { return &s }

var testScope = model.Scope{UserID: "u-1", FirmID: "f-1", Role: "admin"}
