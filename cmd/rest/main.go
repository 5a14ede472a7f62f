package main

import (
	"context"
	"log"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/bootstrap"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/config"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/server"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/tracer"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
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
	defer container.Logger.Sync()

	// 4. Seed the catalog if the store is empty
	if err := container.IngestionService.Run(context.Background()); err != nil {
		log.Printf("Startup ingestion failed: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
