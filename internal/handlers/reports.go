package handlers

import (
	"net/http"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

// SearchFlights handles GET /api/flights/search/query
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	flights, err := h.svc.Flights.Search(r.Context(), models.FlightSearch{
		Origin:      q.Get("origin"),
		Destination: q.Get("destination"),
		Date:        q.Get("date"),
	})
	if err != nil {
		respondServiceError(w, r, "Flight", err)
		return
	}
	if flights == nil {
		flights = []models.Record{}
	}
	respondJSON(w, http.StatusOK, flights)
}

// FinanceSummary handles GET /api/finance/stats/summary
func (h *Handler) FinanceSummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Finance.Summary(r.Context())
	if err != nil {
		respondServiceError(w, r, "Finance record", err)
		return
	}
	if rows == nil {
		rows = []models.Record{}
	}
	respondJSON(w, http.StatusOK, rows)
}
