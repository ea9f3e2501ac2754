package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Armory_Go/internal/database"
)

// Stopper is the part of the HTTP server needed for shutdown
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds everything that needs an orderly stop
type ShutdownComponents struct {
	Server Stopper
	Pool   database.Pool
}

// GracefulShutdown stops accepting requests, lets in-flight transactions
// finish within ctx, then closes the store. Errors are logged and the
// sequence continues.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Pool != nil {
		slog.Info(LogMsgClosingStore)
		components.Pool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
