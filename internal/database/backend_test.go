package database

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/config"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

// dropTables lists the console tables children first so plain DROP TABLE
// never trips a foreign key.
var dropTables = []string{"Finance", "TwoFA", "Tickets", "Admin", "Passenger", "Flight", "Airport", "Aircraft"}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testBackendConfig reads connection settings for a server-backed test run.
// POSTGRES_* and MYSQL_* variables override the local defaults.
func testBackendConfig(driver string) config.Database {
	prefix, port := "POSTGRES", 5432
	if driver == "mysql" {
		prefix, port = "MYSQL", 3306
	}
	if p, err := strconv.Atoi(os.Getenv(prefix + "_PORT")); err == nil {
		port = p
	}
	return config.Database{
		Driver:   driver,
		Host:     envOr(prefix+"_HOST", "localhost"),
		Port:     port,
		User:     envOr(prefix+"_USER", "flightops"),
		Password: envOr(prefix+"_PASSWORD", "flightops"),
		Name:     envOr(prefix+"_DB", "flightops_test"),
		PoolSize: 2,
	}
}

// setupTestBackend opens a fresh, seeded schema on the named server backend.
// The test is skipped when no server is reachable.
func setupTestBackend(t *testing.T, driver string) *Repository {
	t.Helper()
	ctx := context.Background()

	store, err := Open(ctx, testBackendConfig(driver))
	if err != nil {
		t.Skipf("No %s connection available: %v", driver, err)
	}
	t.Cleanup(func() { _ = store.Close() })

	d := store.Dialect()
	for _, table := range dropTables {
		stmt := "DROP TABLE IF EXISTS " + d.Quote(table)
		if driver == "postgres" {
			stmt += " CASCADE"
		}
		_, err := store.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	require.NoError(t, CreateSchema(ctx, store))
	repo := NewRepository(store)
	require.NoError(t, Seed(ctx, repo))
	return repo
}

var serverBackends = []string{"postgres", "mysql"}

func TestBackend_SchemaAndCRUD(t *testing.T) {
	for _, driver := range serverBackends {
		t.Run(driver, func(t *testing.T) {
			repo := setupTestBackend(t, driver)
			ctx := context.Background()

			// re-applying the schema over live data is a no-op
			require.NoError(t, CreateSchema(ctx, repo.store))

			rec := models.Record{"Aircraft_ID": "AC900", "Model": "A350", "Capacity": int64(300), "Manufacturer": "Airbus"}
			require.NoError(t, repo.Insert(ctx, models.AircraftTable, rec))

			got, err := repo.Get(ctx, models.AircraftTable, "AC900")
			require.NoError(t, err)
			assert.Equal(t, "A350", got["Model"])
			assert.EqualValues(t, 300, got["Capacity"])

			require.NoError(t, repo.Update(ctx, models.AircraftTable, "AC900", models.Record{"Model": "A350-1000"}))
			// writing the value already stored still finds the row
			require.NoError(t, repo.Update(ctx, models.AircraftTable, "AC900", models.Record{"Model": "A350-1000"}))

			assert.ErrorIs(t, repo.Update(ctx, models.AircraftTable, "AC999", models.Record{"Model": "X"}), ErrNotFound)

			require.NoError(t, repo.Delete(ctx, models.AircraftTable, "AC900"))
			_, err = repo.Get(ctx, models.AircraftTable, "AC900")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, repo.Delete(ctx, models.AircraftTable, "AC900"), ErrNotFound)

			err = repo.Insert(ctx, models.AircraftTable, models.Record{"Aircraft_ID": "AC901", "Capacity": int64(1200)})
			assert.Error(t, err)

			n, err := repo.Count(ctx, models.FlightTable)
			require.NoError(t, err)
			assert.Equal(t, int64(3), n)
		})
	}
}

func TestBackend_SeatLookup(t *testing.T) {
	for _, driver := range serverBackends {
		t.Run(driver, func(t *testing.T) {
			repo := setupTestBackend(t, driver)
			ctx := context.Background()

			seat := []Cond{
				{Column: models.FieldFlightNo, Value: "FL202"},
				{Column: models.FieldSeatNo, Value: "12a", Fold: true},
			}

			taken, err := repo.Exists(ctx, models.TicketTable, nil, seat...)
			require.NoError(t, err)
			assert.True(t, taken)

			taken, err = repo.Exists(ctx, models.TicketTable, "T001", seat...)
			require.NoError(t, err)
			assert.False(t, taken)
		})
	}
}

func TestBackend_Catalog(t *testing.T) {
	for _, driver := range serverBackends {
		t.Run(driver, func(t *testing.T) {
			repo := setupTestBackend(t, driver)
			ctx := context.Background()

			procs, err := repo.Routines(ctx, models.RoutineProcedure)
			require.NoError(t, err)
			names := make([]any, len(procs))
			for i, p := range procs {
				names[i] = p["name"]
			}
			assert.Contains(t, names, "refresh_total_tickets")

			details, err := repo.Routine(ctx, models.RoutineFunction, "flight_ticket_count")
			require.NoError(t, err)
			assert.Equal(t, "flight_ticket_count", details.Routine["ROUTINE_NAME"])
			require.Len(t, details.Parameters, 1)
			assert.Equal(t, "p_flight_no", details.Parameters[0]["PARAMETER_NAME"])

			_, err = repo.Routine(ctx, models.RoutineProcedure, "no_such_routine")
			assert.ErrorIs(t, err, ErrNotFound)

			triggers, err := repo.Triggers(ctx)
			require.NoError(t, err)
			assert.NotEmpty(t, triggers)

			// zero the counter, then let the procedure recount P001's one ticket
			require.NoError(t, repo.Update(ctx, models.PassengerTable, "P001", models.Record{"Total_Tickets": int64(0)}))
			_, err = repo.Call(ctx, "refresh_total_tickets", []any{"P001"})
			require.NoError(t, err)

			p, err := repo.Get(ctx, models.PassengerTable, "P001")
			require.NoError(t, err)
			assert.EqualValues(t, 1, p["Total_Tickets"])
		})
	}
}

func TestBackend_TotalTicketsTrigger(t *testing.T) {
	for _, driver := range serverBackends {
		t.Run(driver, func(t *testing.T) {
			repo := setupTestBackend(t, driver)

			err := repo.Update(context.Background(), models.PassengerTable, "P002", models.Record{"Total_Tickets": int64(-1)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Total tickets cannot be negative")
		})
	}
}
