package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

func newTestRepo(t *testing.T, seed bool) *Repository {
	t.Helper()
	ctx := context.Background()

	store, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, CreateSchema(ctx, store))
	repo := NewRepository(store)
	if seed {
		require.NoError(t, Seed(ctx, repo))
	}
	return repo
}

func TestCreateSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, CreateSchema(ctx, store))
	require.NoError(t, CreateSchema(ctx, store))
}

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, false)
	table := models.AircraftTable

	err := repo.Insert(ctx, table, models.Record{"Aircraft_ID": "AC1", "Model": "A320", "Capacity": int64(180), "Bogus": "ignored"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, table, "AC1")
	require.NoError(t, err)
	assert.Equal(t, "A320", got["Model"])
	assert.Equal(t, int64(180), got["Capacity"])
	assert.NotContains(t, got, "Bogus")

	// partial update leaves other columns untouched
	require.NoError(t, repo.Update(ctx, table, "AC1", models.Record{"Manufacturer": "Airbus"}))
	got, err = repo.Get(ctx, table, "AC1")
	require.NoError(t, err)
	assert.Equal(t, "A320", got["Model"])
	assert.Equal(t, "Airbus", got["Manufacturer"])

	require.NoError(t, repo.Delete(ctx, table, "AC1"))
	_, err = repo.Get(ctx, table, "AC1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_MissingRows(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, false)

	err := repo.Update(ctx, models.AirportTable, "NOPE", models.Record{"Name": "Nowhere"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, models.AirportTable, "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_NoFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, false)

	var verr *models.ValidationError
	err := repo.Insert(ctx, models.AirportTable, models.Record{"Unknown": 1})
	assert.ErrorAs(t, err, &verr)

	// the key alone is not an update
	err = repo.Update(ctx, models.AirportTable, "BLR", models.Record{"Airport_ID": "XXX"})
	assert.ErrorAs(t, err, &verr)
}

func TestRepository_StoreErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, false)

	rec := models.Record{"Airport_ID": "BLR", "Name": "Kempegowda"}
	require.NoError(t, repo.Insert(ctx, models.AirportTable, rec))

	err := repo.Insert(ctx, models.AirportTable, rec)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "UNIQUE")
}

func TestRepository_ListWithJoins(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)

	tickets, err := repo.List(ctx, models.TicketTable)
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	// newest booking first, passenger names joined in
	assert.Equal(t, "T002", tickets[0]["Ticket_ID"])
	assert.Equal(t, "Omar", tickets[0]["First_Name"])
	assert.Equal(t, "Haddad", tickets[0]["Last_Name"])
	assert.NotNil(t, tickets[0]["Dept_Time"])
}

func TestRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)

	seat := func(s string) []Cond {
		return []Cond{
			{Column: models.FieldFlightNo, Value: "FL202"},
			{Column: models.FieldSeatNo, Value: s, Fold: true},
		}
	}

	found, err := repo.Exists(ctx, models.TicketTable, nil, seat("12a")...)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Exists(ctx, models.TicketTable, "T001", seat("12A")...)
	require.NoError(t, err)
	assert.False(t, found, "a ticket never conflicts with itself")

	found, err = repo.Exists(ctx, models.TicketTable, nil, seat("14C")...)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepository_Count(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)

	n, err := repo.Count(ctx, models.FlightTable)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.Count(ctx, models.AdminTable)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRepository_CapacityConstraint(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, false)

	err := repo.Insert(ctx, models.AircraftTable, models.Record{"Aircraft_ID": "AC9", "Capacity": int64(1200)})
	assert.Error(t, err)
}

func TestRepository_TotalTicketsTrigger(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)

	err := repo.Insert(ctx, models.PassengerTable, models.Record{"Passenger_ID": "P9", "Total_Tickets": int64(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Total tickets cannot be negative")

	err = repo.Update(ctx, models.PassengerTable, "P001", models.Record{"Total_Tickets": int64(-3)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Total tickets cannot be negative")
}

func TestDialects(t *testing.T) {
	assert.Equal(t, "postgres", Postgres.Name())
	assert.Equal(t, "mysql", MySQL.Name())
	assert.Equal(t, "sqlite", SQLite.Name())
	assert.Equal(t, "$3", Postgres.Placeholder(3))
	assert.Equal(t, "?", MySQL.Placeholder(3))
	assert.Equal(t, `"Tickets"`, Postgres.Quote("Tickets"))
	assert.Equal(t, "`we``ird`", MySQL.Quote("we`ird"))
	assert.Equal(t, `"a""b"`, SQLite.Quote(`a"b`))

	assert.Equal(t, `CALL "refresh_total_tickets"($1, $2)`, Postgres.Call("refresh_total_tickets", 2))
	assert.Equal(t, "CALL `refresh_total_tickets`()", MySQL.Call("refresh_total_tickets", 0))
	assert.Empty(t, SQLite.RoutinesQuery())
}
