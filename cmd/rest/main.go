package main

import (
	"context"
	"log"
	"os"

	"fikrswap-academy-be/internal/bootstrap"
	"fikrswap-academy-be/internal/config"
	"fikrswap-academy-be/internal/server"
	"fikrswap-academy-be/internal/tracer"
	"fikrswap-academy-be/pkg/database"
)

func main() {
	// 0. Tracer (opt-in)
	if os.Getenv("OTEL_ENABLED") == "true" {
		shutdownTracer := tracer.InitTracer()
		defer shutdownTracer(context.Background())
	}

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
