package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/database"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/events"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

const seatTakenMessage = "This seat is already booked for this flight."

// resourceService implements ResourceService over a table descriptor
type resourceService struct {
	repo  *database.Repository
	table models.Table
	pub   events.Publisher
}

// NewResourceService creates a ResourceService for table. A nil publisher
// disables change events.
func NewResourceService(repo *database.Repository, table models.Table, pub events.Publisher) ResourceService {
	return newResourceService(repo, table, pub)
}

func newResourceService(repo *database.Repository, table models.Table, pub events.Publisher) *resourceService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &resourceService{repo: repo, table: table, pub: pub}
}

func (s *resourceService) Table() models.Table {
	return s.table
}

func (s *resourceService) List(ctx context.Context) ([]models.Record, error) {
	return s.repo.List(ctx, s.table)
}

func (s *resourceService) Get(ctx context.Context, id string) (models.Record, error) {
	return s.repo.Get(ctx, s.table, id)
}

func (s *resourceService) Create(ctx context.Context, body models.Record) (any, error) {
	if s.table.Validate != nil {
		if err := s.table.Validate(body, true); err != nil {
			return nil, err
		}
	}
	if !body.Filled(s.table.Key) {
		return nil, models.Invalid(fmt.Sprintf("%s is required", s.table.Key))
	}

	rec, err := s.columns(body)
	if err != nil {
		return nil, err
	}
	if err := s.checkSeat(ctx, nil, rec); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, s.table, rec); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Created, rec[s.table.Key])
	return body[s.table.Key], nil
}

func (s *resourceService) Update(ctx context.Context, id string, body models.Record) error {
	if s.table.Validate != nil {
		if err := s.table.Validate(body, false); err != nil {
			return err
		}
	}

	rec, err := s.columns(body)
	if err != nil {
		return err
	}
	if err := s.checkSeat(ctx, id, rec); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, s.table, id, rec); err != nil {
		return err
	}

	s.publish(ctx, events.Updated, id)
	return nil
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, s.table, id); err != nil {
		return err
	}
	s.publish(ctx, events.Deleted, id)
	return nil
}

// columns keeps the descriptor columns of body and converts each value to
// what its column stores: times through the dialect, numbers as numbers,
// everything else as text.
func (s *resourceService) columns(body models.Record) (models.Record, error) {
	rec := body.Only(s.table.Columns)
	for col, v := range rec {
		if v == nil {
			continue
		}
		str, isString := v.(string)
		if isString && strings.TrimSpace(str) == "" && col != s.table.Key {
			rec[col] = nil
			continue
		}

		switch {
		case s.table.IsTime(col):
			t, ok := rec.Time(col)
			if !ok {
				return nil, models.Invalid(fmt.Sprintf("%s must be a valid date-time", col))
			}
			rec[col] = s.repo.Dialect().BindTime(t)
		case s.table.IsNumber(col):
			if !isString {
				continue
			}
			if i, ok := rec.Int(col); ok {
				rec[col] = i
			} else if f, ok := rec.Float(col); ok {
				rec[col] = f
			} else {
				return nil, models.Invalid(fmt.Sprintf("%s must be a number", col))
			}
		case !isString:
			rec[col], _ = rec.String(col)
		}
	}
	return rec, nil
}

// checkSeat rejects a ticket whose (flight, seat) pair is held by another
// ticket. On update a lone seat or flight is paired with the stored value.
// The check and the write are separate statements, so two concurrent
// bookings of the same seat can both pass.
func (s *resourceService) checkSeat(ctx context.Context, id any, rec models.Record) error {
	if s.table.Table != models.TicketTable.Table {
		return nil
	}
	seat, hasSeat := rec.String(models.FieldSeatNo)
	flight, hasFlight := rec.String(models.FieldFlightNo)
	if !hasSeat && !hasFlight {
		return nil
	}

	if id != nil && hasSeat != hasFlight {
		current, err := s.repo.Get(ctx, s.table, id)
		if errors.Is(err, database.ErrNotFound) {
			// the update itself reports the missing ticket
			return nil
		}
		if err != nil {
			return err
		}
		if !hasSeat {
			seat, hasSeat = current.String(models.FieldSeatNo)
		}
		if !hasFlight {
			flight, hasFlight = current.String(models.FieldFlightNo)
		}
	}
	if !hasSeat || !hasFlight || seat == "" || flight == "" {
		return nil
	}

	taken, err := s.repo.Exists(ctx, s.table, id,
		database.Cond{Column: models.FieldFlightNo, Value: flight},
		database.Cond{Column: models.FieldSeatNo, Value: seat, Fold: true},
	)
	if err != nil {
		return err
	}
	if taken {
		return models.Invalid(seatTakenMessage)
	}
	return nil
}

func (s *resourceService) publish(ctx context.Context, typ events.Type, id any) {
	if s.table.Resource == "" {
		return
	}
	// the request may already be finished; delivery must not depend on it
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()
	if err := s.pub.Publish(ctx, events.New(typ, s.table.Resource, id)); err != nil {
		log.Printf("Failed to publish %s %s event for %v: %v", s.table.Resource, typ, id, err)
	}
}

// flightService adds search to flight CRUD
type flightService struct {
	*resourceService
}

// NewFlightService creates a FlightService
func NewFlightService(repo *database.Repository, pub events.Publisher) FlightService {
	return &flightService{resourceService: newResourceService(repo, models.FlightTable, pub)}
}

// Search filters flights; the date must be YYYY-MM-DD
func (s *flightService) Search(ctx context.Context, q models.FlightSearch) ([]models.Record, error) {
	q.Origin = strings.TrimSpace(q.Origin)
	q.Destination = strings.TrimSpace(q.Destination)
	q.Date = strings.TrimSpace(q.Date)
	if q.Date != "" {
		if _, err := time.Parse("2006-01-02", q.Date); err != nil {
			return nil, models.Invalid("date must be in YYYY-MM-DD format")
		}
	}
	return s.repo.SearchFlights(ctx, q)
}

// financeService adds the summary to finance CRUD
type financeService struct {
	*resourceService
}

// NewFinanceService creates a FinanceService
func NewFinanceService(repo *database.Repository, pub events.Publisher) FinanceService {
	return &financeService{resourceService: newResourceService(repo, models.FinanceTable, pub)}
}

func (s *financeService) Summary(ctx context.Context) ([]models.Record, error) {
	return s.repo.FinanceSummary(ctx)
}
