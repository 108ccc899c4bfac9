package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/PlayPredix_Go/docs"
	"github.com/osse101/PlayPredix_Go/internal/auth"
	"github.com/osse101/PlayPredix_Go/internal/bootstrap"
	"github.com/osse101/PlayPredix_Go/internal/config"
	"github.com/osse101/PlayPredix_Go/internal/database"
	"github.com/osse101/PlayPredix_Go/internal/server"
	"github.com/osse101/PlayPredix_Go/internal/storage"
)

const shutdownTimeout = 30 * time.Second

// @title PlayPredix API
// @version 1.0
// @description Sports predictions, private leagues and leaderboards.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("PlayPredix exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return err
	}

	if cfg.RunMigrations {
		if err := database.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return err
		}
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	eventBus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		dbPool.Close()
		return err
	}

	logos, err := storage.New(ctx, cfg.Logo)
	if err != nil {
		dbPool.Close()
		return err
	}

	svcs := bootstrap.InitializeServices(cfg, repos, eventBus, logos)

	background, err := bootstrap.StartBackground(cfg, repos, eventBus, svcs.Leaderboards)
	if err != nil {
		dbPool.Close()
		return err
	}

	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, dbPool, verifier, svcs)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Background: background,
		DBPool:     dbPool,
	})

	return err
}
