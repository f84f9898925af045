package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

func records(args mock.Arguments) ([]models.Record, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Record), args.Error(1)
}

// MockResourceService is a mock implementation of ResourceService
type MockResourceService struct {
	mock.Mock
	Descriptor models.Table
}

func (m *MockResourceService) Table() models.Table {
	return m.Descriptor
}

func (m *MockResourceService) List(ctx context.Context) ([]models.Record, error) {
	return records(m.Called(ctx))
}

func (m *MockResourceService) Get(ctx context.Context, id string) (models.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *MockResourceService) Create(ctx context.Context, body models.Record) (any, error) {
	args := m.Called(ctx, body)
	return args.Get(0), args.Error(1)
}

func (m *MockResourceService) Update(ctx context.Context, id string, body models.Record) error {
	args := m.Called(ctx, id, body)
	return args.Error(0)
}

func (m *MockResourceService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFlightService is a mock implementation of FlightService
type MockFlightService struct {
	MockResourceService
}

func (m *MockFlightService) Search(ctx context.Context, q models.FlightSearch) ([]models.Record, error) {
	return records(m.Called(ctx, q))
}

// MockFinanceService is a mock implementation of FinanceService
type MockFinanceService struct {
	MockResourceService
}

func (m *MockFinanceService) Summary(ctx context.Context) ([]models.Record, error) {
	return records(m.Called(ctx))
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

func (m *MockDashboardService) Tables(ctx context.Context) ([]models.Record, error) {
	return records(m.Called(ctx))
}

func (m *MockDashboardService) TableRows(ctx context.Context, name string) ([]models.Record, error) {
	return records(m.Called(ctx, name))
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Routines(ctx context.Context, typ models.RoutineType) ([]models.Record, error) {
	return records(m.Called(ctx, typ))
}

func (m *MockCatalogService) Triggers(ctx context.Context) ([]models.Record, error) {
	return records(m.Called(ctx))
}

func (m *MockCatalogService) Details(ctx context.Context, typ models.RoutineType, name string) (*models.RoutineDetails, error) {
	args := m.Called(ctx, typ, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RoutineDetails), args.Error(1)
}

func (m *MockCatalogService) Execute(ctx context.Context, req *models.ExecuteRequest) ([]models.Record, error) {
	return records(m.Called(ctx, req))
}
