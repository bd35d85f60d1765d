package main

import (
	"context"
	"log"

	"blogmosaic/internal/bootstrap"
	"blogmosaic/internal/config"
	"blogmosaic/internal/server"
	"blogmosaic/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Toast Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	if container.AuditService != nil {
		log.Println("Background: Starting Event Audit Consumer...")
		if err := container.AuditService.Start(); err != nil {
			log.Printf("Background Audit Error: %v", err)
		}
		defer container.AuditService.Close()
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
