package service

import (
	"context"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/database"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

const dashboardListSize = 5

// dashboardServiceImpl implements DashboardService
type dashboardServiceImpl struct {
	repo *database.Repository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(repo *database.Repository) DashboardService {
	return &dashboardServiceImpl{repo: repo}
}

// Stats recomputes every figure on each call
func (s *dashboardServiceImpl) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	for _, dt := range models.DashboardTables {
		n, err := s.repo.Count(ctx, dt.Table)
		if err != nil {
			return nil, err
		}
		stats.SetCount(dt.Field, n)
	}

	recent, err := s.repo.RecentBookings(ctx, dashboardListSize)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.repo.UpcomingFlights(ctx, dashboardListSize)
	if err != nil {
		return nil, err
	}

	stats.RecentBookings = nonNil(recent)
	stats.UpcomingFlights = nonNil(upcoming)
	return stats, nil
}

// Tables lists every table. Backends that keep no row statistics get an
// exact count instead.
func (s *dashboardServiceImpl) Tables(ctx context.Context) ([]models.Record, error) {
	tables, err := s.repo.Tables(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tables {
		if t.Has("rows") {
			continue
		}
		name, _ := t.String("name")
		n, err := s.repo.CountTable(ctx, name)
		if err != nil {
			return nil, err
		}
		t["rows"] = n
	}
	return nonNil(tables), nil
}

// TableRows returns the first rows of a table named in the table listing
func (s *dashboardServiceImpl) TableRows(ctx context.Context, name string) ([]models.Record, error) {
	tables, err := s.repo.Tables(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tables {
		if known, _ := t.String("name"); known == name {
			rows, err := s.repo.TableRows(ctx, known)
			if err != nil {
				return nil, err
			}
			return nonNil(rows), nil
		}
	}
	return nil, ErrUnknownTable
}

func nonNil(recs []models.Record) []models.Record {
	if recs == nil {
		return []models.Record{}
	}
	return recs
}
