package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CraftMarket_Go/internal/database"
)

// stoppable is the part of the HTTP server needed for shutdown
type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server stoppable
	DBPool database.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight requests can
// finish against an open pool, then closes the pool. Errors are logged and
// do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) error {
	slog.Info(LogMsgShuttingDownServer)

	var firstErr error
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
			firstErr = err
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
	return firstErr
}
