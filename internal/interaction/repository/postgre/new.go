package postgre

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"patient-portal-assistant/internal/interaction/repository"
	"patient-portal-assistant/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	newID func() string
}

// New creates a PostgreSQL-backed Repository for the interaction domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("interaction/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, newID: uuid.NewString}
}

func (r *implRepository) op(method string) string {
	return fmt.Sprintf("interaction/repository/postgre.%s", method)
}
