// Manual seeding entrypoint. The REST server seeds on startup; this tool
// exists for provisioning the database ahead of time or re-checking it.
package main

import (
	"context"
	"log"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/bootstrap"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/config"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Unable to connect to database: %v", err)
		log.Fatal(err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	color.Cyan("Seeding vibe catalog...")
	if err := container.IngestionService.Run(context.Background()); err != nil {
		color.Red("Ingestion failed: %v", err)
		log.Fatal(err)
	}

	color.Green("✔ Catalog ready")
}
