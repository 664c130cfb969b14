package postgre

import (
	"database/sql"

	"trustrate-srv/internal/analysis/repository"
	"trustrate-srv/pkg/log"
)

type implPostgresRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory function.
func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implPostgresRepository{
		db: db,
		l:  l,
	}
}
