package postgre

import (
	"database/sql"
	"fmt"

	"tax-practice-management/internal/taxreturn/repository"
	"tax-practice-management/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the taxreturn domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("taxreturn/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("taxreturn/repository/postgre.%s", method)
}
