package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PlayPredix_Go/internal/database"
	"github.com/osse101/PlayPredix_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Background *Background
	DBPool     database.Pool
}

// GracefulShutdown stops the HTTP server, then background work, then closes
// the database pool. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Background != nil {
		slog.Info(LogMsgShuttingDownBackground)
		components.Background.Stop()
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
