package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/service"
)

// Procedures handles GET /api/procedures/procedures
func (h *Handler) Procedures(w http.ResponseWriter, r *http.Request) {
	h.routines(w, r, models.RoutineProcedure)
}

// Functions handles GET /api/procedures/functions
func (h *Handler) Functions(w http.ResponseWriter, r *http.Request) {
	h.routines(w, r, models.RoutineFunction)
}

func (h *Handler) routines(w http.ResponseWriter, r *http.Request, typ models.RoutineType) {
	recs, err := h.svc.Catalog.Routines(r.Context(), typ)
	if err != nil {
		respondServiceError(w, r, "Routine", err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

// Triggers handles GET /api/procedures/triggers
func (h *Handler) Triggers(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Catalog.Triggers(r.Context())
	if err != nil {
		respondServiceError(w, r, "Trigger", err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

// RoutineDetails handles GET /api/procedures/details/{type}/{name}
func (h *Handler) RoutineDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	typ := models.RoutineType(strings.ToUpper(vars["type"]))

	details, err := h.svc.Catalog.Details(r.Context(), typ, vars["name"])
	if errors.Is(err, service.ErrUnknownRoutine) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("%s not found", vars["type"]))
		return
	}
	if err != nil {
		respondServiceError(w, r, "Routine", err)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// ExecuteProcedure handles POST /api/procedures/execute
func (h *Handler) ExecuteProcedure(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var req models.ExecuteRequest
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rows, err := h.svc.Catalog.Execute(r.Context(), &req)
	if errors.Is(err, service.ErrUnknownRoutine) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Procedure %s not found", req.ProcedureName))
		return
	}
	if err != nil {
		respondServiceError(w, r, "Procedure", err)
		return
	}

	respondJSON(w, http.StatusOK, models.ExecuteResponse{
		Success: true,
		Message: fmt.Sprintf("Procedure %s executed successfully", req.ProcedureName),
		Result:  rows,
	})
}
