package main

import (
	"context"
	"log"

	"service-marketplace-be/internal/bootstrap"
	"service-marketplace-be/internal/config"
	"service-marketplace-be/internal/server"
	"service-marketplace-be/internal/tracer"
	"service-marketplace-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	if err := container.BroadcastConsumer.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start broadcast consumer: %v", err)
	}
	if err := container.NotificationService.Start(); err != nil {
		log.Printf("Warn: notification service not started: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
