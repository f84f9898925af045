package service

import (
	"context"
	"errors"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/database"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	repo *database.Repository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo *database.Repository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

func (s *catalogServiceImpl) Routines(ctx context.Context, typ models.RoutineType) ([]models.Record, error) {
	recs, err := s.repo.Routines(ctx, typ)
	if err != nil {
		return nil, err
	}
	return nonNil(recs), nil
}

func (s *catalogServiceImpl) Triggers(ctx context.Context) ([]models.Record, error) {
	recs, err := s.repo.Triggers(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(recs), nil
}

func (s *catalogServiceImpl) Details(ctx context.Context, typ models.RoutineType, name string) (*models.RoutineDetails, error) {
	if typ != models.RoutineProcedure && typ != models.RoutineFunction {
		return nil, ErrUnknownRoutine
	}
	details, err := s.repo.Routine(ctx, typ, name)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrUnknownRoutine
	}
	if err != nil {
		return nil, err
	}
	details.Parameters = nonNil(details.Parameters)
	return details, nil
}

// Execute calls a stored procedure by name. Only names in the procedure
// listing are accepted; the name is quoted by the dialect and every
// parameter is bound.
func (s *catalogServiceImpl) Execute(ctx context.Context, req *models.ExecuteRequest) ([]models.Record, error) {
	if req.ProcedureName == "" {
		return nil, models.Invalid("procedureName is required")
	}

	procs, err := s.repo.Routines(ctx, models.RoutineProcedure)
	if err != nil {
		return nil, err
	}
	known := false
	for _, p := range procs {
		if name, _ := p.String("name"); name == req.ProcedureName {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrUnknownRoutine
	}

	params := make([]any, len(req.Parameters))
	for i, p := range req.Parameters {
		params[i] = models.Bindable(p)
	}

	rows, err := s.repo.Call(ctx, req.ProcedureName, params)
	if err != nil {
		return nil, err
	}
	return nonNil(rows), nil
}
