package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	repo "tax-practice-management/internal/project/repository"
	"tax-practice-management/pkg/log"
)

const sqlstateUndefinedFunction = "42883"

type implTxHooks struct {
	db *sql.DB
	l  log.Logger
}

// NewTxHooks creates advisory transaction hooks backed by the optional
// app_begin/app_commit/app_rollback database procedures.
func NewTxHooks(db *sql.DB, l log.Logger) repo.TxHooks {
	if db == nil {
		panic("project/repository/postgre: db is required")
	}
	return &implTxHooks{db: db, l: l}
}

func (h *implTxHooks) Begin(ctx context.Context) repo.HookResult {
	return h.call(ctx, "SELECT app_begin()")
}

func (h *implTxHooks) Commit(ctx context.Context) repo.HookResult {
	return h.call(ctx, "SELECT app_commit()")
}

func (h *implTxHooks) Rollback(ctx context.Context) repo.HookResult {
	return h.call(ctx, "SELECT app_rollback()")
}

// call runs one hook procedure. A missing procedure is Unavailable, any
// other failure is Failed; neither is surfaced as an error.
func (h *implTxHooks) call(ctx context.Context, query string) repo.HookResult {
	if _, err := h.db.ExecContext(ctx, query); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == sqlstateUndefinedFunction {
			return repo.HookUnavailable
		}
		h.l.Warnf(ctx, "project/repository/postgre tx hook %q: %v", query, err)
		return repo.HookFailed
	}
	return repo.HookOK
}
