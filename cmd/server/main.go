package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/config"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/database"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/events"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/handlers"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/router"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/service"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	migrate := flag.Bool("migrate", false, "create the schema before serving")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	log.Printf("Connecting to %s database...", cfg.Database.Driver)
	store, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()
	log.Printf("Connected to %s database", store.Dialect().Name())

	if *migrate {
		if err := database.CreateSchema(ctx, store); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
		log.Println("Schema ready")
	}

	repo := database.NewRepository(store)

	// Change feed
	hub := events.NewHub()
	go hub.Run(ctx)

	var pub events.Publisher = hub
	if cfg.NATS.URL != "" {
		nc, err := events.ConnectNATS(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer nc.Close()
		log.Printf("Publishing change events to NATS at %s", cfg.NATS.URL)
		pub = events.Multi{hub, nc}
	}

	// Initialize services
	h := handlers.NewHandler(handlers.Services{
		Aircraft:   service.NewResourceService(repo, models.AircraftTable, pub),
		Airports:   service.NewResourceService(repo, models.AirportTable, pub),
		Flights:    service.NewFlightService(repo, pub),
		Passengers: service.NewResourceService(repo, models.PassengerTable, pub),
		Bookings:   service.NewResourceService(repo, models.TicketTable, pub),
		Crew:       service.NewResourceService(repo, models.AdminTable, pub),
		Finance:    service.NewFinanceService(repo, pub),
		Auth:       service.NewAuthService(repo),
		Dashboard:  service.NewDashboardService(repo),
		Catalog:    service.NewCatalogService(repo),
	})

	r := router.SetupRouter(h, http.HandlerFunc(hub.ServeWS))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("API Server starting on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server stopped")
}
