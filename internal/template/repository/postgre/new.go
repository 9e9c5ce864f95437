package postgre

import (
	"database/sql"
	"fmt"

	"tax-practice-management/internal/template/repository"
	"tax-practice-management/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the template domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("template/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("template/repository/postgre.%s", method)
}
