package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/database"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/service"
)

// Services bundles everything the HTTP layer calls into
type Services struct {
	Aircraft   service.ResourceService
	Airports   service.ResourceService
	Flights    service.FlightService
	Passengers service.ResourceService
	Bookings   service.ResourceService
	Crew       service.ResourceService
	Finance    service.FinanceService
	Auth       service.AuthService
	Dashboard  service.DashboardService
	Catalog    service.CatalogService
}

// Handler contains HTTP handlers for the API
type Handler struct {
	svc Services
}

// NewHandler creates a new Handler instance
func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

// Resources returns the CRUD services in route registration order
func (h *Handler) Resources() []service.ResourceService {
	return []service.ResourceService{
		h.svc.Aircraft,
		h.svc.Airports,
		h.svc.Flights,
		h.svc.Passengers,
		h.svc.Bookings,
		h.svc.Crew,
		h.svc.Finance,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps a service error onto the API's error contract.
// name is the resource reported in a 404.
func respondServiceError(w http.ResponseWriter, r *http.Request, name string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, name+" not found")
	default:
		log.Printf("Error handling %s %s: %v", r.Method, r.URL.Path, err)
		respondError(w, http.StatusInternalServerError, rootCause(err).Error())
	}
}

// rootCause unwraps to the store's own error so its message reaches the client
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// decodeRecord reads a JSON object body, keeping numbers exact
func decodeRecord(r *http.Request) (models.Record, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var rec models.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = models.Record{}
	}
	return rec, nil
}

// Health handles GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Flight Management API is running",
	})
}
