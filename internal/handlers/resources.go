package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/service"
)

// ResourceHandler serves List, Get, Create, Update and Delete for one resource
type ResourceHandler struct {
	svc  service.ResourceService
	name string
}

// NewResourceHandler creates a handler set for svc
func NewResourceHandler(svc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc, name: svc.Table().Name}
}

// List handles GET /api/{resource}
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		respondServiceError(w, r, h.name, err)
		return
	}
	if recs == nil {
		recs = []models.Record{}
	}
	respondJSON(w, http.StatusOK, recs)
}

// Get handles GET /api/{resource}/{id}
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, h.name, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// Create handles POST /api/{resource}
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRecord(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.svc.Create(r.Context(), body)
	if err != nil {
		respondServiceError(w, r, h.name, err)
		return
	}

	respondJSON(w, http.StatusCreated, models.CreatedResponse{
		Message: h.name + " created successfully",
		ID:      id,
	})
}

// Update handles PUT /api/{resource}/{id}
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRecord(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.Update(r.Context(), mux.Vars(r)["id"], body); err != nil {
		respondServiceError(w, r, h.name, err)
		return
	}
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: h.name + " updated successfully"})
}

// Delete handles DELETE /api/{resource}/{id}
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, r, h.name, err)
		return
	}
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: h.name + " deleted successfully"})
}
