package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

// Repository handles all table operations. SQL identifiers come from
// models.Table descriptors; request values are always bound as arguments.
type Repository struct {
	store Store
	d     Dialect
}

// NewRepository creates a new repository
func NewRepository(store Store) *Repository {
	return &Repository{store: store, d: store.Dialect()}
}

// Dialect returns the dialect of the underlying store
func (r *Repository) Dialect() Dialect {
	return r.d
}

// Cond is one equality condition on a base-table column
type Cond struct {
	Column string
	Value  any
	// Fold compares case-insensitively.
	Fold bool
}

// args collects bind values and hands out the matching placeholders
type args struct {
	d    Dialect
	vals []any
}

func (a *args) add(v any) string {
	a.vals = append(a.vals, v)
	return a.d.Placeholder(len(a.vals))
}

func (r *Repository) col(alias, column string) string {
	return r.d.Quote(alias) + "." + r.d.Quote(column)
}

// selectFrom renders the SELECT list and FROM clause of t with its joins
func (r *Repository) selectFrom(t models.Table) string {
	fields := []string{r.d.Quote(t.Alias) + ".*"}
	from := r.d.Quote(t.Table) + " " + r.d.Quote(t.Alias)
	for _, j := range t.Joins {
		for _, f := range j.Fields {
			fields = append(fields, r.col(j.Alias, f))
		}
		from += fmt.Sprintf(" LEFT JOIN %s %s ON %s = %s",
			r.d.Quote(j.Table), r.d.Quote(j.Alias), r.col(t.Alias, j.On), r.col(j.Alias, j.On))
	}
	return "SELECT " + strings.Join(fields, ", ") + " FROM " + from
}

func (r *Repository) orderBy(t models.Table) string {
	if len(t.Order) == 0 {
		return ""
	}
	terms := make([]string, len(t.Order))
	for i, o := range t.Order {
		terms[i] = r.col(t.Alias, o.Column)
		if o.Desc {
			terms[i] += " DESC"
		}
	}
	return " ORDER BY " + strings.Join(terms, ", ")
}

func (r *Repository) where(t models.Table, conds []Cond, a *args) string {
	if len(conds) == 0 {
		return ""
	}
	parts := make([]string, len(conds))
	for i, c := range conds {
		if c.Fold {
			parts[i] = fmt.Sprintf("UPPER(%s) = UPPER(%s)", r.col(t.Alias, c.Column), a.add(c.Value))
			continue
		}
		parts[i] = fmt.Sprintf("%s = %s", r.col(t.Alias, c.Column), a.add(c.Value))
	}
	return " WHERE " + strings.Join(parts, " AND ")
}

// List returns every row of t in its default order
func (r *Repository) List(ctx context.Context, t models.Table) ([]models.Record, error) {
	recs, err := r.store.Query(ctx, r.selectFrom(t)+r.orderBy(t))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.Table, err)
	}
	return recs, nil
}

// Find returns the rows of t matching every condition
func (r *Repository) Find(ctx context.Context, t models.Table, conds ...Cond) ([]models.Record, error) {
	a := &args{d: r.d}
	query := r.selectFrom(t) + r.where(t, conds, a) + r.orderBy(t)
	recs, err := r.store.Query(ctx, query, a.vals...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.Table, err)
	}
	return recs, nil
}

// Get returns the row of t keyed by id
func (r *Repository) Get(ctx context.Context, t models.Table, id any) (models.Record, error) {
	recs, err := r.Find(ctx, t, Cond{Column: t.Key, Value: id})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return recs[0], nil
}

// Exists reports whether a row of t other than exclude matches conds. A nil
// exclude checks every row.
func (r *Repository) Exists(ctx context.Context, t models.Table, exclude any, conds ...Cond) (bool, error) {
	a := &args{d: r.d}
	query := "SELECT 1 AS found FROM " + r.d.Quote(t.Table) + " " + r.d.Quote(t.Alias) + r.where(t, conds, a)
	if exclude != nil {
		op := " AND "
		if len(conds) == 0 {
			op = " WHERE "
		}
		query += op + r.col(t.Alias, t.Key) + " <> " + a.add(exclude)
	}
	recs, err := r.store.Query(ctx, query+" LIMIT 1", a.vals...)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", t.Table, err)
	}
	return len(recs) > 0, nil
}

// Count returns the number of rows in t
func (r *Repository) Count(ctx context.Context, t models.Table) (int64, error) {
	return r.CountTable(ctx, t.Table)
}

// CountTable counts the rows of a table by name. Callers must only pass
// names read from the store's own catalog or a descriptor.
func (r *Repository) CountTable(ctx context.Context, table string) (int64, error) {
	recs, err := r.store.Query(ctx, "SELECT COUNT(*) AS count FROM "+r.d.Quote(table))
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	if len(recs) == 0 {
		return 0, nil
	}
	n, _ := recs[0].Int("count")
	return n, nil
}

// Insert writes the descriptor columns present in rec as a new row
func (r *Repository) Insert(ctx context.Context, t models.Table, rec models.Record) error {
	a := &args{d: r.d}
	var cols, marks []string
	for _, c := range t.Columns {
		if v, ok := rec[c]; ok {
			cols = append(cols, r.d.Quote(c))
			marks = append(marks, a.add(v))
		}
	}
	if len(cols) == 0 {
		return models.Invalid("No fields to insert")
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.d.Quote(t.Table), strings.Join(cols, ", "), strings.Join(marks, ", "))
	if _, err := r.store.Exec(ctx, query, a.vals...); err != nil {
		return fmt.Errorf("failed to insert %s: %w", t.Table, err)
	}
	return nil
}

// Update sets the descriptor columns present in rec on the row keyed by id.
// The key itself is never rewritten.
func (r *Repository) Update(ctx context.Context, t models.Table, id any, rec models.Record) error {
	a := &args{d: r.d}
	var sets []string
	for _, c := range t.Columns {
		if c == t.Key {
			continue
		}
		if v, ok := rec[c]; ok {
			sets = append(sets, r.d.Quote(c)+" = "+a.add(v))
		}
	}
	if len(sets) == 0 {
		return models.Invalid("No fields to update")
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
		r.d.Quote(t.Table), strings.Join(sets, ", "), r.d.Quote(t.Key), a.add(id))
	n, err := r.store.Exec(ctx, query, a.vals...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", t.Table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row keyed by id
func (r *Repository) Delete(ctx context.Context, t models.Table, id any) error {
	a := &args{d: r.d}
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = %s", r.d.Quote(t.Table), r.d.Quote(t.Key), a.add(id))
	n, err := r.store.Exec(ctx, query, a.vals...)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", t.Table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
