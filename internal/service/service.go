package service

import (
	"context"
	"errors"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or role")
	ErrOTPNotConfigured   = errors.New("two-factor authentication not set up")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrUnknownRoutine     = errors.New("routine not found")
	ErrUnknownTable       = errors.New("table not found")
)

// ResourceService defines CRUD over one table-backed resource
type ResourceService interface {
	Table() models.Table
	List(ctx context.Context) ([]models.Record, error)
	Get(ctx context.Context, id string) (models.Record, error)
	// Create returns the key the caller supplied for the new row.
	Create(ctx context.Context, body models.Record) (any, error)
	Update(ctx context.Context, id string, body models.Record) error
	Delete(ctx context.Context, id string) error
}

// FlightService adds search to flight CRUD
type FlightService interface {
	ResourceService
	Search(ctx context.Context, q models.FlightSearch) ([]models.Record, error)
}

// FinanceService adds the per-type summary to finance CRUD
type FinanceService interface {
	ResourceService
	Summary(ctx context.Context) ([]models.Record, error)
}

// AuthService checks console logins against Admin and TwoFA
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.Account, error)
}

// DashboardService computes the dashboard and backs the table browser
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	Tables(ctx context.Context) ([]models.Record, error)
	TableRows(ctx context.Context, name string) ([]models.Record, error)
}

// CatalogService lists and runs the store's stored routines
type CatalogService interface {
	Routines(ctx context.Context, typ models.RoutineType) ([]models.Record, error)
	Triggers(ctx context.Context) ([]models.Record, error)
	Details(ctx context.Context, typ models.RoutineType, name string) (*models.RoutineDetails, error)
	Execute(ctx context.Context, req *models.ExecuteRequest) ([]models.Record, error)
}
