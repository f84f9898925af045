package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/service"
)

// DashboardStats handles GET /api/dashboard/stats
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Dashboard.Stats(r.Context())
	if err != nil {
		respondServiceError(w, r, "Dashboard", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// DashboardTables handles GET /api/dashboard/tables
func (h *Handler) DashboardTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.svc.Dashboard.Tables(r.Context())
	if err != nil {
		respondServiceError(w, r, "Table", err)
		return
	}
	respondJSON(w, http.StatusOK, tables)
}

// DashboardTable handles GET /api/dashboard/table/{tableName}
func (h *Handler) DashboardTable(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Dashboard.TableRows(r.Context(), mux.Vars(r)["tableName"])
	if errors.Is(err, service.ErrUnknownTable) {
		respondError(w, http.StatusNotFound, "Table not found")
		return
	}
	if err != nil {
		respondServiceError(w, r, "Table", err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}
