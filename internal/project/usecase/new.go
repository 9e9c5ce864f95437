package usecase

import (
	"time"

	"tax-practice-management/internal/project"
	"tax-practice-management/internal/project/repository"
	"tax-practice-management/pkg/gcalendar"
	"tax-practice-management/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	hooks      repository.TxHooks
	calendar   *gcalendar.Client
	calendarID string
	loc        *time.Location
	now        func() time.Time
}

// Config carries the deadline clock settings and optional integrations.
// All dates in deadline math are interpreted in Location. Calendar may be
// nil; deadline events are then skipped.
type Config struct {
	Location   *time.Location
	Now        func() time.Time
	Calendar   *gcalendar.Client
	CalendarID string
}

// New creates a new project UseCase.
func New(l log.Logger, repo repository.Repository, hooks repository.TxHooks, cfg Config) project.UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		hooks:      hooks,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
		loc:        cfg.Location,
		now:        cfg.Now,
	}
}
