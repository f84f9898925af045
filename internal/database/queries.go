package database

import (
	"context"
	"fmt"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

// TableRowLimit caps the rows returned by the table browser
const TableRowLimit = 1000

// SearchFlights filters flights by departure airport, arrival airport and
// departure date (YYYY-MM-DD). Empty filters are skipped.
func (r *Repository) SearchFlights(ctx context.Context, q models.FlightSearch) ([]models.Record, error) {
	t := models.FlightTable
	a := &args{d: r.d}
	query := "SELECT " + r.d.Quote(t.Alias) + ".* FROM " + r.d.Quote(t.Table) + " " + r.d.Quote(t.Alias) + " WHERE 1=1"
	if q.Origin != "" {
		query += " AND " + r.col(t.Alias, models.FieldDeptAirport) + " = " + a.add(q.Origin)
	}
	if q.Destination != "" {
		query += " AND " + r.col(t.Alias, models.FieldArrAirport) + " = " + a.add(q.Destination)
	}
	if q.Date != "" {
		query += " AND " + r.d.DateOf(r.col(t.Alias, models.FieldDeptTime)) + " = " + a.add(q.Date)
	}
	query += " ORDER BY " + r.col(t.Alias, models.FieldDeptTime)

	recs, err := r.store.Query(ctx, query, a.vals...)
	if err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}
	return recs, nil
}

// FinanceSummary returns one row per transaction type. total_transactions is
// counted within the group, so it always equals type_count.
func (r *Repository) FinanceSummary(ctx context.Context) ([]models.Record, error) {
	q := r.d.Quote
	query := fmt.Sprintf(`SELECT COUNT(*) AS total_transactions, SUM(%[1]s) AS total_revenue,
		AVG(%[1]s) AS average_transaction, %[2]s, COUNT(*) AS type_count
	FROM %[3]s
	GROUP BY %[2]s`, q(models.FieldAmount), q(models.FieldTxType), q(models.FinanceTable.Table))

	recs, err := r.store.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise finance: %w", err)
	}
	return recs, nil
}

// RecentBookings returns the newest tickets with passenger names
func (r *Repository) RecentBookings(ctx context.Context, limit int) ([]models.Record, error) {
	t, p := models.TicketTable, models.PassengerTable
	query := fmt.Sprintf(`SELECT %[1]s.*, %[2]s AS first_name, %[3]s AS last_name, %[4]s AS flight_number
	FROM %[5]s %[1]s
	LEFT JOIN %[6]s %[7]s ON %[8]s = %[9]s
	ORDER BY %[10]s DESC
	LIMIT %[11]d`,
		r.d.Quote(t.Alias),
		r.col(p.Alias, models.FieldFirstName),
		r.col(p.Alias, models.FieldLastName),
		r.col(t.Alias, models.FieldFlightNo),
		r.d.Quote(t.Table),
		r.d.Quote(p.Table),
		r.d.Quote(p.Alias),
		r.col(t.Alias, models.FieldPassengerID),
		r.col(p.Alias, models.FieldPassengerID),
		r.col(t.Alias, models.FieldBookingDate),
		limit,
	)

	recs, err := r.store.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent bookings: %w", err)
	}
	return recs, nil
}

// UpcomingFlights returns the soonest flights departing after now
func (r *Repository) UpcomingFlights(ctx context.Context, limit int) ([]models.Record, error) {
	f := models.FlightTable
	query := fmt.Sprintf(`SELECT %[1]s.*, %[2]s AS flight_number, 'Scheduled' AS status
	FROM %[3]s %[1]s
	WHERE %[4]s > %[5]s
	ORDER BY %[4]s ASC
	LIMIT %[6]d`,
		r.d.Quote(f.Alias),
		r.col(f.Alias, models.FieldFlightNo),
		r.d.Quote(f.Table),
		r.col(f.Alias, models.FieldDeptTime),
		r.d.Now(),
		limit,
	)

	recs, err := r.store.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming flights: %w", err)
	}
	return recs, nil
}

// Tables lists the store's tables with their row counts and timestamps
func (r *Repository) Tables(ctx context.Context) ([]models.Record, error) {
	recs, err := r.store.Query(ctx, r.d.TablesQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return recs, nil
}

// TableRows returns up to TableRowLimit rows of a table. The name must come
// from Tables; it is quoted, never bound.
func (r *Repository) TableRows(ctx context.Context, table string) ([]models.Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT %d", r.d.Quote(table), TableRowLimit)
	recs, err := r.store.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	return recs, nil
}

// Routines lists stored procedures or functions. Backends without stored
// routines return an empty list.
func (r *Repository) Routines(ctx context.Context, typ models.RoutineType) ([]models.Record, error) {
	if r.d.RoutinesQuery() == "" {
		return []models.Record{}, nil
	}
	recs, err := r.store.Query(ctx, r.d.RoutinesQuery(), string(typ))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s routines: %w", typ, err)
	}
	return recs, nil
}

// Triggers lists the store's triggers
func (r *Repository) Triggers(ctx context.Context) ([]models.Record, error) {
	recs, err := r.store.Query(ctx, r.d.TriggersQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}
	return recs, nil
}

// Routine returns one routine's catalog row and its ordered parameters
func (r *Repository) Routine(ctx context.Context, typ models.RoutineType, name string) (*models.RoutineDetails, error) {
	if r.d.RoutineQuery() == "" {
		return nil, ErrNotFound
	}
	rows, err := r.store.Query(ctx, r.d.RoutineQuery(), string(typ), name)
	if err != nil {
		return nil, fmt.Errorf("failed to get routine %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	params, err := r.store.Query(ctx, r.d.ParametersQuery(), string(typ), name)
	if err != nil {
		return nil, fmt.Errorf("failed to get parameters of %s: %w", name, err)
	}
	return &models.RoutineDetails{Routine: rows[0], Parameters: params}, nil
}

// Call executes a stored procedure with positional arguments. The name must
// come from Routines; it is quoted, never bound.
func (r *Repository) Call(ctx context.Context, name string, params []any) ([]models.Record, error) {
	query := r.d.Call(name, len(params))
	if query == "" {
		return nil, ErrNotFound
	}
	recs, err := r.store.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", name, err)
	}
	return recs, nil
}
