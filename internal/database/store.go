package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/config"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store is the statement-level surface every backend provides. It is opened
// once per process and shared by every handler; its pool bounds concurrency.
type Store interface {
	Dialect() Dialect
	// Query runs a statement and returns its rows keyed by column name.
	Query(ctx context.Context, query string, args ...any) ([]models.Record, error)
	// Exec runs a statement and returns the number of affected rows.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Dialect hides the SQL differences between backends
type Dialect interface {
	Name() string
	// Placeholder returns the bind marker for the n-th (1-based) argument.
	Placeholder(n int) string
	Quote(ident string) string
	Now() string
	DateOf(expr string) string
	// BindTime converts a parsed timestamp into the value the driver stores.
	BindTime(t time.Time) any

	// Catalog queries. RoutinesQuery takes the routine type as its only
	// argument and is empty when the backend has no stored routines.
	TablesQuery() string
	RoutinesQuery() string
	TriggersQuery() string
	// RoutineQuery and ParametersQuery take (type, name).
	RoutineQuery() string
	ParametersQuery() string
	Call(name string, nargs int) string

	// Schema returns the DDL statements creating the console tables.
	Schema() []string
}

// Open connects to the backend named by cfg.Driver
func Open(ctx context.Context, cfg config.Database) (Store, error) {
	switch cfg.Driver {
	case "postgres":
		s, err := OpenPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "mysql":
		s, err := OpenMySQL(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
}

// CreateSchema applies the dialect's DDL statements in order
func CreateSchema(ctx context.Context, s Store) error {
	for _, stmt := range s.Dialect().Schema() {
		if _, err := s.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
