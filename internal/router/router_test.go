package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/handlers"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/service/mocks"
)

type routerMocks struct {
	aircraft *mocks.MockResourceService
	flights  *mocks.MockFlightService
	finance  *mocks.MockFinanceService
}

func newTestRouter(events http.Handler) (http.Handler, *routerMocks) {
	m := &routerMocks{
		aircraft: &mocks.MockResourceService{Descriptor: models.AircraftTable},
		flights:  &mocks.MockFlightService{MockResourceService: mocks.MockResourceService{Descriptor: models.FlightTable}},
		finance:  &mocks.MockFinanceService{MockResourceService: mocks.MockResourceService{Descriptor: models.FinanceTable}},
	}
	h := handlers.NewHandler(handlers.Services{
		Aircraft:   m.aircraft,
		Airports:   &mocks.MockResourceService{Descriptor: models.AirportTable},
		Flights:    m.flights,
		Passengers: &mocks.MockResourceService{Descriptor: models.PassengerTable},
		Bookings:   &mocks.MockResourceService{Descriptor: models.TicketTable},
		Crew:       &mocks.MockResourceService{Descriptor: models.AdminTable},
		Finance:    m.finance,
		Auth:       new(mocks.MockAuthService),
		Dashboard:  new(mocks.MockDashboardService),
		Catalog:    new(mocks.MockCatalogService),
	})
	return SetupRouter(h, events), m
}

func TestRouter_Health(t *testing.T) {
	r, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	r, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestRouter_Preflight(t *testing.T) {
	r, _ := newTestRouter(nil)

	for _, path := range []string{"/api/airlines", "/api/airlines/AC100", "/api/auth/login"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE", path)
	}
}

func TestRouter_ReportRoutesWinOverID(t *testing.T) {
	r, m := newTestRouter(nil)
	m.flights.On("Search", mock.Anything, models.FlightSearch{Origin: "BOM"}).Return([]models.Record{}, nil)
	m.finance.On("Summary", mock.Anything).Return([]models.Record{}, nil)

	for _, path := range []string{"/api/flights/search/query?origin=BOM", "/api/finance/stats/summary"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	m.flights.AssertExpectations(t)
	m.finance.AssertExpectations(t)
	m.flights.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestRouter_ResourcePaths(t *testing.T) {
	r, m := newTestRouter(nil)
	m.aircraft.On("List", mock.Anything).Return([]models.Record{{"Aircraft_ID": "AC100"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/airlines", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"Aircraft_ID":"AC100"}]`, rec.Body.String())
	m.aircraft.AssertExpectations(t)
}

func TestRouter_NotFound(t *testing.T) {
	r, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/nowhere", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	r, m := newTestRouter(nil)
	m.aircraft.On("List", mock.Anything).Panic("boom")

	req := httptest.NewRequest(http.MethodGet, "/api/airlines", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestRouter_EventsRoute(t *testing.T) {
	called := false
	events := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})
	r, _ := newTestRouter(events)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
