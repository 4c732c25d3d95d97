package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/scheduler"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

type shutdownableService interface {
	Shutdown(context.Context) error
}

type stoppable interface {
	Stop(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server             stoppable
	DailyTickWorker    *worker.DailyTickWorker
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	InventoryService   shutdownableService
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in dependency order:
// the HTTP server, then background ticks, then the inventory service,
// and the event publisher last so pending events are flushed.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DailyTickWorker != nil {
		if err := components.DailyTickWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgDailyTickWorkerFailed, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.InventoryService != nil {
		shutdownService(ctx, ServiceNameInventory, components.InventoryService)
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
