package usecase

import (
	projectRepo "tax-practice-management/internal/project/repository"
	"tax-practice-management/internal/taxreturn"
	"tax-practice-management/internal/taxreturn/repository"
	"tax-practice-management/pkg/log"
)

type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	projectRepo projectRepo.Repository
	hooks       projectRepo.TxHooks
}

// New creates a new taxreturn UseCase. The project repository and hooks serve
// the completed-status cascade to a linked project.
func New(l log.Logger, repo repository.Repository, pr projectRepo.Repository, hooks projectRepo.TxHooks) taxreturn.UseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		projectRepo: pr,
		hooks:       hooks,
	}
}
