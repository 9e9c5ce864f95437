package usecase_test

import (
	"context"
	"errors"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/task"
	"tax-practice-management/internal/task/repository"
	"tax-practice-management/internal/task/usecase"
	"tax-practice-management/pkg/openai"
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
	tasks map[string]model.Task

	createCalls []repository.CreateOptions
	updateCalls []repository.UpdateOptions
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	m.createCalls = append(m.createCalls, opt)
	return model.Task{ID: "t-new", FirmID: opt.FirmID, Title: opt.Title, Status: opt.Status}, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repository.GetOneOptions) (model.Task, error) {
	return m.tasks[opt.ID], nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, opt repository.UpdateOptions) (model.Task, error) {
	m.updateCalls = append(m.updateCalls, opt)
	t := m.tasks[opt.ID]
	if opt.Checklist != nil {
		t.Checklist = opt.Checklist
	}
	if opt.ActivityLog != nil {
		t.ActivityLog = opt.ActivityLog
	}
	return t, nil
}

func (m *mockRepo) Delete(ctx context.Context, firmID, id string) error {
	delete(m.tasks, id)
	return nil
}

type mockOpenAI struct {
	content string
	fail    bool
}

func (m *mockOpenAI) ChatCompletion(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	if m.fail {
		return nil, errors.New("service unavailable")
	}
	return &openai.Response{Choices: []openai.Choice{
		{Message: openai.Message{Role: "assistant", Content: m.content}},
	}}, nil
}

func newTestUseCase(repo repository.Repository, ai openai.IOpenAI) task.UseCase {
	return usecase.New(&mockLogger{}, repo, ai)
}

var testScope = model.Scope{UserID: "u-1", FirmID: "f-1", Role: "admin"}
