package main

import (
	"context"
	"flag"
	"log"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/config"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/database"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	seed := flag.Bool("seed", false, "load sample rows after creating the schema")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	log.Printf("Connecting to %s database...", cfg.Database.Driver)
	store, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database")

	if err := database.CreateSchema(ctx, store); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Printf("Schema created on %s", store.Dialect().Name())

	if !*seed {
		return
	}
	if err := database.Seed(ctx, database.NewRepository(store)); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Sample data loaded")
}
