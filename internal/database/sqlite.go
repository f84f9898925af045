package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

// SQLiteStore is the single-file backend used for local runs and tests
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path. ":memory:" gives a
// private in-process database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One connection: an in-memory database lives and dies with it, and
	// SQLite serialises writers anyway.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite %s: %w", pragma, err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Dialect() Dialect { return SQLite }

func (s *SQLiteStore) Query(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

func (s *SQLiteStore) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanRecords drains rows into records. Shared by every database/sql backend.
func scanRecords(rows *sql.Rows) ([]models.Record, error) {
	defer rows.Close()

	cols, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	records := []models.Record{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		rec := make(models.Record, len(cols))
		for i, col := range cols {
			rec[col.Name()] = columnValue(col.DatabaseTypeName(), values[i])
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// columnValue decodes the raw bytes drivers return for text-protocol results.
// Integers and floats become numbers; decimals and everything else stay text.
func columnValue(dbType string, v any) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(b)
	switch t := strings.ToUpper(dbType); {
	case strings.Contains(t, "INT"):
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	case t == "FLOAT" || t == "DOUBLE" || t == "REAL":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
