package database

import (
	"fmt"
	"strings"
	"time"
)

// Dialects for the supported backends
var (
	Postgres Dialect = postgresDialect{}
	MySQL    Dialect = mysqlDialect{}
	SQLite   Dialect = sqliteDialect{}
)

// sqliteTimeLayout sorts lexically, so stored times compare as text.
const sqliteTimeLayout = "2006-01-02 15:04:05"

func placeholders(d Dialect, n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = d.Placeholder(i + 1)
	}
	return strings.Join(marks, ", ")
}

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }
func (postgresDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }
func (postgresDialect) Quote(ident string) string { return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"` }
func (postgresDialect) Now() string { return "NOW()" }
func (postgresDialect) DateOf(expr string) string { return "CAST(" + expr + " AS DATE)" }
func (postgresDialect) BindTime(t time.Time) any { return t }
func (postgresDialect) Schema() []string { return postgresSchema }
func (d postgresDialect) Call(name string, n int) string {
	return "CALL " + d.Quote(name) + "(" + placeholders(d, n) + ")"
}

func (postgresDialect) TablesQuery() string {
	return `SELECT relname AS "name", n_live_tup AS "rows", NULL::timestamptz AS "created",
		GREATEST(last_vacuum, last_autovacuum, last_analyze, last_autoanalyze) AS "updated"
	FROM pg_stat_user_tables
	WHERE schemaname = current_schema()
	ORDER BY relname`
}

func (postgresDialect) RoutinesQuery() string {
	return `SELECT routine_name AS "name", routine_definition AS "definition",
		NULL::text AS "comment", created AS "created"
	FROM information_schema.routines
	WHERE routine_schema = current_schema() AND routine_type = $1
	ORDER BY routine_name`
}

func (postgresDialect) TriggersQuery() string {
	return `SELECT trigger_name AS "name", event_manipulation AS "event", event_object_table AS "table_name",
		action_statement AS "definition", action_timing AS "timing", created AS "created"
	FROM information_schema.triggers
	WHERE trigger_schema = current_schema()
	ORDER BY trigger_name`
}

func (postgresDialect) RoutineQuery() string {
	return `SELECT routine_name AS "ROUTINE_NAME", routine_definition AS "ROUTINE_DEFINITION",
		routine_type AS "ROUTINE_TYPE", data_type AS "DTD_IDENTIFIER", NULL::text AS "ROUTINE_COMMENT",
		created AS "CREATED", last_altered AS "LAST_ALTERED"
	FROM information_schema.routines
	WHERE routine_schema = current_schema() AND routine_type = $1 AND routine_name = $2`
}

func (postgresDialect) ParametersQuery() string {
	return `SELECT p.parameter_name AS "PARAMETER_NAME", p.parameter_mode AS "PARAMETER_MODE",
		p.data_type AS "DATA_TYPE", p.character_maximum_length AS "CHARACTER_MAXIMUM_LENGTH"
	FROM information_schema.parameters p
	JOIN information_schema.routines r
		ON r.specific_schema = p.specific_schema AND r.specific_name = p.specific_name
	WHERE r.routine_schema = current_schema() AND r.routine_type = $1 AND r.routine_name = $2
	ORDER BY p.ordinal_position`
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return "mysql" }
func (mysqlDialect) Placeholder(int) string { return "?" }
func (mysqlDialect) Quote(ident string) string { return "`" + strings.ReplaceAll(ident, "`", "``") + "`" }

// Now is UTC because times are bound in UTC and DATETIME carries no zone.
func (mysqlDialect) Now() string { return "UTC_TIMESTAMP()" }
func (mysqlDialect) DateOf(expr string) string { return "DATE(" + expr + ")" }
func (mysqlDialect) BindTime(t time.Time) any { return t.UTC() }
func (mysqlDialect) Schema() []string { return mysqlSchema }
func (d mysqlDialect) Call(name string, n int) string {
	return "CALL " + d.Quote(name) + "(" + placeholders(d, n) + ")"
}

func (mysqlDialect) TablesQuery() string {
	return "SELECT TABLE_NAME AS `name`, TABLE_ROWS AS `rows`, CREATE_TIME AS `created`, UPDATE_TIME AS `updated`" +
		" FROM information_schema.TABLES" +
		" WHERE TABLE_SCHEMA = DATABASE() AND TABLE_TYPE = 'BASE TABLE'" +
		" ORDER BY TABLE_NAME"
}

func (mysqlDialect) RoutinesQuery() string {
	return "SELECT ROUTINE_NAME AS name, ROUTINE_DEFINITION AS definition," +
		" ROUTINE_COMMENT AS comment, CREATED AS created" +
		" FROM information_schema.ROUTINES" +
		" WHERE ROUTINE_SCHEMA = DATABASE() AND ROUTINE_TYPE = ?" +
		" ORDER BY ROUTINE_NAME"
}

func (mysqlDialect) TriggersQuery() string {
	return "SELECT TRIGGER_NAME AS name, EVENT_MANIPULATION AS event," +
		" EVENT_OBJECT_TABLE AS table_name, ACTION_STATEMENT AS definition," +
		" ACTION_TIMING AS timing, CREATED AS created" +
		" FROM information_schema.TRIGGERS" +
		" WHERE TRIGGER_SCHEMA = DATABASE()" +
		" ORDER BY TRIGGER_NAME"
}

func (mysqlDialect) RoutineQuery() string {
	return "SELECT ROUTINE_NAME, ROUTINE_DEFINITION, ROUTINE_TYPE," +
		" DTD_IDENTIFIER, ROUTINE_COMMENT, CREATED, LAST_ALTERED" +
		" FROM information_schema.ROUTINES" +
		" WHERE ROUTINE_SCHEMA = DATABASE() AND ROUTINE_TYPE = ? AND ROUTINE_NAME = ?"
}

// ParametersQuery skips position 0, which holds a function's return type.
func (mysqlDialect) ParametersQuery() string {
	return "SELECT PARAMETER_NAME, PARAMETER_MODE, DATA_TYPE, CHARACTER_MAXIMUM_LENGTH" +
		" FROM information_schema.PARAMETERS" +
		" WHERE SPECIFIC_SCHEMA = DATABASE() AND ROUTINE_TYPE = ? AND SPECIFIC_NAME = ? AND ORDINAL_POSITION > 0" +
		" ORDER BY ORDINAL_POSITION"
}

// sqliteDialect has no stored routines; its routine queries are empty.
type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }
func (sqliteDialect) Placeholder(int) string { return "?" }
func (sqliteDialect) Quote(ident string) string { return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"` }
func (sqliteDialect) Now() string { return "datetime('now')" }
func (sqliteDialect) DateOf(expr string) string { return "date(" + expr + ")" }
func (sqliteDialect) BindTime(t time.Time) any { return t.UTC().Format(sqliteTimeLayout) }
func (sqliteDialect) Schema() []string { return sqliteSchema }
func (sqliteDialect) Call(string, int) string { return "" }
func (sqliteDialect) RoutinesQuery() string { return "" }
func (sqliteDialect) RoutineQuery() string { return "" }
func (sqliteDialect) ParametersQuery() string { return "" }

func (sqliteDialect) TablesQuery() string {
	return `SELECT name AS "name", NULL AS "rows", NULL AS "created", NULL AS "updated"
	FROM sqlite_master
	WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	ORDER BY name`
}

func (sqliteDialect) TriggersQuery() string {
	return `SELECT name AS "name", NULL AS "event", tbl_name AS "table_name", sql AS "definition",
		NULL AS "timing", NULL AS "created"
	FROM sqlite_master
	WHERE type = 'trigger'
	ORDER BY name`
}
