package usecase

import (
	"tax-practice-management/internal/task"
	"tax-practice-management/internal/task/repository"
	"tax-practice-management/pkg/log"
	"tax-practice-management/pkg/openai"
)

type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	openai openai.IOpenAI
}

// New creates a new task UseCase. The classification client may be nil;
// Classify then falls back to the default category immediately.
func New(l log.Logger, repo repository.Repository, ai openai.IOpenAI) task.UseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		openai: ai,
	}
}
