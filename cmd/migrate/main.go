package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/osse101/PlayPredix_Go/internal/config"
	"github.com/osse101/PlayPredix_Go/internal/database"
	"github.com/osse101/PlayPredix_Go/internal/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: migrate [up|down|version]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-migrate", cfg.Version, cfg.Environment, false))

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{MaxConns: 2})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	switch command {
	case "up":
		err = database.Migrate(ctx, pool)
	case "down":
		err = database.MigrateDown(ctx, pool)
	case "version":
		var version int64
		version, err = database.MigrationVersion(ctx, pool)
		if err == nil {
			fmt.Printf("Schema version: %d\n", version)
		}
	default:
		flag.Usage()
		pool.Close()
		os.Exit(2)
	}
	if err != nil {
		pool.Close()
		log.Fatalf("Migration %s failed: %v", command, err)
	}
}
