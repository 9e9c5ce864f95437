package postgre

import (
	"database/sql"
	"fmt"

	"tax-practice-management/internal/client/repository"
	"tax-practice-management/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the client domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("client/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("client/repository/postgre.%s", method)
}
