package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/osse101/PlayPredix_Go/internal/competition"
	"github.com/osse101/PlayPredix_Go/internal/config"
	"github.com/osse101/PlayPredix_Go/internal/database"
	"github.com/osse101/PlayPredix_Go/internal/database/postgres"
	"github.com/osse101/PlayPredix_Go/internal/logger"
	"github.com/osse101/PlayPredix_Go/internal/repository"
	"github.com/osse101/PlayPredix_Go/internal/repository/memory"
	"github.com/osse101/PlayPredix_Go/internal/storage"
	"github.com/osse101/PlayPredix_Go/internal/validation"
)

func main() {
	file := flag.String("file", "", "competition fixture JSON file")
	dryRun := flag.Bool("dry-run", false, "validate and import into memory only")
	schemaPath := flag.String("schema", "", "validate against this schema file as well, e.g. "+config.ConfigPathFixtureSchema)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger.InitLogger(logger.DevelopmentConfig())

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read fixture: %v", err)
	}

	if *schemaPath != "" {
		if err := validation.NewSchemaValidator().ValidateBytes(data, *schemaPath); err != nil {
			log.Fatalf("Fixture does not match %s: %v", *schemaPath, err)
		}
	}

	fixtures, err := validation.NewFixtureValidator()
	if err != nil {
		log.Fatalf("Failed to load fixture schema: %v", err)
	}
	fixture, err := fixtures.ParseFixture(data)
	if err != nil {
		log.Fatalf("Invalid fixture %s: %v", *file, err)
	}

	ctx := context.Background()
	var repo repository.Competition
	if *dryRun {
		repo = memory.NewStore()
	} else {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{MaxConns: 2})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		repo = postgres.NewCompetitionRepository(pool)
	}

	summary, err := competition.ImportFixture(ctx, competition.NewService(repo, storage.NoopStore{}), fixture)
	if err != nil {
		if summary != nil {
			slog.Error("Fixture import stopped", "competition_id", summary.Competition.ID,
				"teams", summary.Teams, "games", summary.Games, "props", summary.Props)
		}
		log.Fatalf("Import failed: %v", err)
	}

	mode := "Imported"
	if *dryRun {
		mode = "Dry run OK"
	}
	fmt.Printf("%s: %q (slug %s) with %d teams, %d games, %d props\n",
		mode, summary.Competition.Name, summary.Competition.Slug, summary.Teams, summary.Games, summary.Props)
}
