// Package storage elige el backend del document store según la config.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	mem "penguin-api/internal/adapters/storage/memory"
	pg "penguin-api/internal/adapters/storage/postgres"
	sq "penguin-api/internal/adapters/storage/sqlite"
	"penguin-api/internal/config"
	"penguin-api/internal/domain/penguins"
)

// Store agrupa el repo abierto y la conexión que hay que cerrar al final.
type Store struct {
	Driver   string
	Penguins penguins.Repository

	db *sql.DB
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Open abre el backend configurado. Con AutoMigrate aplica el schema de Postgres
// (SQLite lo aplica siempre al abrir).
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		if cfg.AutoMigrate {
			if err := pg.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		return &Store{Driver: cfg.Driver, Penguins: pg.NewPenguinsRepo(db), db: db}, nil

	case config.DriverSQLite:
		db, err := sq.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return &Store{Driver: cfg.Driver, Penguins: sq.NewPenguinsRepo(db), db: db}, nil

	case config.DriverMemory, "":
		return &Store{Driver: config.DriverMemory, Penguins: mem.NewPenguinRepo()}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Migrate aplica el schema sin levantar el server (comando migrate).
func Migrate(ctx context.Context, cfg config.StoreConfig) error {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return fmt.Errorf("open postgres store: %w", err)
		}
		defer db.Close()
		return pg.Migrate(ctx, db)

	case config.DriverSQLite:
		db, err := sq.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite store: %w", err)
		}
		return db.Close()

	default:
		return nil
	}
}
