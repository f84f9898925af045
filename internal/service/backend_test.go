package service

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/config"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/database"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openBackendRepo opens a freshly seeded schema on a Postgres or MySQL server
// configured through POSTGRES_* / MYSQL_* variables, skipping when none is
// reachable.
func openBackendRepo(t *testing.T, driver string) *database.Repository {
	t.Helper()
	ctx := context.Background()

	prefix, port := "POSTGRES", 5432
	if driver == "mysql" {
		prefix, port = "MYSQL", 3306
	}
	if p, err := strconv.Atoi(os.Getenv(prefix + "_PORT")); err == nil {
		port = p
	}
	store, err := database.Open(ctx, config.Database{
		Driver:   driver,
		Host:     envOr(prefix+"_HOST", "localhost"),
		Port:     port,
		User:     envOr(prefix+"_USER", "flightops"),
		Password: envOr(prefix+"_PASSWORD", "flightops"),
		Name:     envOr(prefix+"_DB", "flightops_test"),
		PoolSize: 2,
	})
	if err != nil {
		t.Skipf("No %s connection available: %v", driver, err)
	}
	t.Cleanup(func() { _ = store.Close() })

	for _, table := range []string{"Finance", "TwoFA", "Tickets", "Admin", "Passenger", "Flight", "Airport", "Aircraft"} {
		stmt := "DROP TABLE IF EXISTS " + store.Dialect().Quote(table)
		if driver == "postgres" {
			stmt += " CASCADE"
		}
		_, err := store.Exec(ctx, stmt)
		require.NoError(t, err)
	}
	require.NoError(t, database.CreateSchema(ctx, store))

	repo := database.NewRepository(store)
	require.NoError(t, database.Seed(ctx, repo))
	return repo
}

func TestBackend_BookingSeatConflict(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			svc := NewResourceService(openBackendRepo(t, driver), models.TicketTable, nil)

			_, err := svc.Create(ctx, models.Record{"Ticket_ID": "T010", "Seat_No": "12a", "Flight_No": "FL202", "Passenger_ID": "P003"})
			assertInvalid(t, err, seatTakenMessage)

			_, err = svc.Create(ctx, models.Record{"Ticket_ID": "T011", "Seat_No": " 12A", "Flight_No": "FL202", "Passenger_ID": "P003"})
			assertInvalid(t, err, "Invalid seat number format")

			id, err := svc.Create(ctx, models.Record{"Ticket_ID": "T012", "Seat_No": "14B", "Flight_No": "FL202", "Passenger_ID": "P003"})
			require.NoError(t, err)
			assert.Equal(t, "T012", id)

			assert.NoError(t, svc.Update(ctx, "T001", models.Record{"Seat_No": "12A", "Class": "Premium"}))
			assertInvalid(t, svc.Update(ctx, "T012", models.Record{"Seat_No": "12A"}), seatTakenMessage)
		})
	}
}

func TestBackend_ExecuteProcedure(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			repo := openBackendRepo(t, driver)
			catalog := NewCatalogService(repo)
			passengers := NewResourceService(repo, models.PassengerTable, nil)

			require.NoError(t, passengers.Update(ctx, "P002", models.Record{"Total_Tickets": int64(0)}))

			rows, err := catalog.Execute(ctx, &models.ExecuteRequest{
				ProcedureName: "refresh_total_tickets",
				Parameters:    []any{"P002"},
			})
			require.NoError(t, err)
			assert.NotNil(t, rows)

			p, err := passengers.Get(ctx, "P002")
			require.NoError(t, err)
			assert.EqualValues(t, 1, p["Total_Tickets"])

			_, err = catalog.Execute(ctx, &models.ExecuteRequest{ProcedureName: "drop_everything"})
			assert.ErrorIs(t, err, ErrUnknownRoutine)

			details, err := catalog.Details(ctx, models.RoutineProcedure, "refresh_total_tickets")
			require.NoError(t, err)
			require.Len(t, details.Parameters, 1)
			assert.Equal(t, "p_passenger_id", details.Parameters[0]["PARAMETER_NAME"])
		})
	}
}
