package usecase_test

import (
	"context"

	"tax-practice-management/internal/model"
	taskRepo "tax-practice-management/internal/task/repository"
	taskUsecase "tax-practice-management/internal/task/usecase"
	"tax-practice-management/internal/template"
	"tax-practice-management/internal/template/repository"
	"tax-practice-management/internal/template/usecase"
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
	templates map[string]model.ProjectTemplate

	createCalls  []repository.CreateOptions
	replaceCalls [][]model.TemplateTask
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.ProjectTemplate, error) {
	m.createCalls = append(m.createCalls, opt)
	total := 0
	for _, t := range opt.Tasks {
		total += t.EstimatedMinutes
	}
	return model.ProjectTemplate{
		ID:                    "tpl-new",
		FirmID:                opt.FirmID,
		Title:                 opt.Title,
		DefaultPriority:       opt.DefaultPriority,
		EstimatedTotalMinutes: total,
		Tasks:                 opt.Tasks,
	}, nil
}

func (m *mockRepo) GetOne(ctx context.Context, opt repository.GetOneOptions) (model.ProjectTemplate, error) {
	return m.templates[opt.ID], nil
}

func (m *mockRepo) List(ctx context.Context, firmID string) ([]model.ProjectTemplate, error) {
	var out []model.ProjectTemplate
	for _, t := range m.templates {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, opt repository.UpdateOptions) (model.ProjectTemplate, error) {
	t := m.templates[opt.ID]
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	m.templates[opt.ID] = t
	return t, nil
}

func (m *mockRepo) Delete(ctx context.Context, firmID, id string) error {
	delete(m.templates, id)
	return nil
}

func (m *mockRepo) ReplaceTasks(ctx context.Context, firmID, templateID string, tasks []model.TemplateTask) (model.ProjectTemplate, error) {
	m.replaceCalls = append(m.replaceCalls, tasks)
	t := m.templates[templateID]
	t.Tasks = tasks
	m.templates[templateID] = t
	return t, nil
}

type mockTaskRepo struct {
	createCalls []taskRepo.CreateOptions
	failCreate  error
}

func (m *mockTaskRepo) Create(ctx context.Context, opt taskRepo.CreateOptions) (model.Task, error) {
	if m.failCreate != nil {
		return model.Task{}, m.failCreate
	}
	m.createCalls = append(m.createCalls, opt)
	return model.Task{
		ID:             "t-" + opt.Title,
		FirmID:         opt.FirmID,
		ProjectID:      opt.ProjectID,
		Title:          opt.Title,
		Status:         opt.Status,
		Priority:       opt.Priority,
		EstimatedHours: opt.EstimatedHours,
		OrderIndex:     opt.OrderIndex,
		Dependencies:   opt.Dependencies,
	}, nil
}

func (m *mockTaskRepo) GetOne(ctx context.Context, opt taskRepo.GetOneOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) List(ctx context.Context, opt taskRepo.ListOptions) ([]model.Task, error) {
	return nil, nil
}

func (m *mockTaskRepo) Update(ctx context.Context, opt taskRepo.UpdateOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) Delete(ctx context.Context, firmID, id string) error {
	return nil
}

// newTestUseCase wires the template use case with a real task use case, since
// set validation is pure logic.
func newTestUseCase(repo *mockRepo, tr *mockTaskRepo) template.UseCase {
	taskUC := taskUsecase.New(&mockLogger{}, tr, nil)
	return usecase.New(&mockLogger{}, repo, tr, taskUC)
}

var testScope = model.Scope{UserID: "u-1", FirmID: "f-1", Role: "admin"}
