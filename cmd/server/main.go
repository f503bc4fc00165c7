package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override environment
	port := flag.String("port", cfg.Server.Port, "Server port")
	dbPath := flag.String("db", cfg.Storage.Path, "SQLite database path")
	unit := flag.String("unit", cfg.Calculator.DefaultUnit, "Default angle unit (deg or rad)")
	dev := flag.Bool("dev", cfg.Logging.Development, "Development logging")
	flag.Parse()

	cfg.Server.Port = *port
	cfg.Storage.Path = *dbPath
	cfg.Calculator.DefaultUnit = *unit
	cfg.Logging.Development = *dev

	log.Println("Scientific Calculator backend")

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			srv.Close()
			log.Fatalf("Server error: %v", err)
		}
	}
}
