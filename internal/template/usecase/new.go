package usecase

import (
	taskDomain "tax-practice-management/internal/task"
	taskRepo "tax-practice-management/internal/task/repository"
	"tax-practice-management/internal/template"
	"tax-practice-management/internal/template/repository"
	"tax-practice-management/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	taskRepo taskRepo.Repository
	taskUC   taskDomain.UseCase
}

// New creates a new template UseCase. The task use case supplies set
// validation; the task repository receives tasks created by expansion.
func New(l log.Logger, repo repository.Repository, tr taskRepo.Repository, tuc taskDomain.UseCase) template.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		taskRepo: tr,
		taskUC:   tuc,
	}
}
