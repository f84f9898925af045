package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/handlers"
)

// SetupRouter creates and configures the HTTP router. events, when non-nil,
// serves the change feed at /api/events.
func SetupRouter(h *handlers.Handler, events http.Handler) *mux.Router {
	r := mux.NewRouter()

	r.Use(requestIDMiddleware, loggingMiddleware, recoveryMiddleware, corsMiddleware)
	r.NotFoundHandler = http.HandlerFunc(notFound)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/verify", h.Verify).Methods(http.MethodGet, http.MethodOptions)

	// Dashboard
	api.HandleFunc("/dashboard/stats", h.DashboardStats).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/dashboard/tables", h.DashboardTables).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/dashboard/table/{tableName}", h.DashboardTable).Methods(http.MethodGet, http.MethodOptions)

	// Procedures
	api.HandleFunc("/procedures/procedures", h.Procedures).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/procedures/functions", h.Functions).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/procedures/triggers", h.Triggers).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/procedures/execute", h.ExecuteProcedure).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/procedures/details/{type}/{name}", h.RoutineDetails).Methods(http.MethodGet, http.MethodOptions)

	// Reports sit under resource prefixes, so they go before /{id}
	api.HandleFunc("/flights/search/query", h.SearchFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/finance/stats/summary", h.FinanceSummary).Methods(http.MethodGet, http.MethodOptions)

	// Resources
	for _, svc := range h.Resources() {
		rh := handlers.NewResourceHandler(svc)
		base := "/" + svc.Table().Resource
		api.HandleFunc(base, rh.List).Methods(http.MethodGet, http.MethodOptions)
		api.HandleFunc(base, rh.Create).Methods(http.MethodPost)
		api.HandleFunc(base+"/{id}", rh.Get).Methods(http.MethodGet, http.MethodOptions)
		api.HandleFunc(base+"/{id}", rh.Update).Methods(http.MethodPut)
		api.HandleFunc(base+"/{id}", rh.Delete).Methods(http.MethodDelete)
	}

	// WebSocket change feed
	if events != nil {
		api.Handle("/events", events).Methods(http.MethodGet)
	}

	// Health check
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet, http.MethodOptions)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Route not found"}`))
}
