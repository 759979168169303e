package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const driverName = "postgres"

type Config struct {
	DSN            string
	MaxOpenConns   int
	MaxIdleConns   int
	ConnectRetries int
	RetryDelay     time.Duration
}

var ErrDSNRequired = errors.New("postgres: dsn is required")

// Connect opens a pool and pings it, retrying while the database comes up.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, ErrDSNRequired
	}

	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	attempts := max(cfg.ConnectRetries, 1)
	for i := 0; i < attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			return db, nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(cfg.RetryDelay):
		}
	}

	db.Close()
	return nil, fmt.Errorf("postgres: ping after %d attempts: %w", attempts, err)
}

// Migrate applies all pending up migrations from sourceURL (e.g. "file://migrations").
// An already up-to-date schema is not an error.
func Migrate(sourceURL, dsn string) error {
	if dsn == "" {
		return ErrDSNRequired
	}

	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("postgres: migrate init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgres: migrate up: %w", err)
	}
	return nil
}
