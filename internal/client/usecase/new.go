package usecase

import (
	"tax-practice-management/internal/client"
	"tax-practice-management/internal/client/repository"
	"tax-practice-management/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates a new client UseCase.
func New(l log.Logger, repo repository.Repository) client.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
