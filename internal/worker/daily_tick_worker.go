package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// DayAdvancer is the part of the inventory service the daily tick needs
type DayAdvancer interface {
	AdvanceDay(ctx context.Context) (*domain.TickRun, error)
}

// DailyTickWorker advances the stock once a day at a fixed wall-clock hour
type DailyTickWorker struct {
	service  DayAdvancer
	hour     int
	location *time.Location
	now      func() time.Time

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyTickWorker creates a worker that ticks at hour:00 in location
func NewDailyTickWorker(service DayAdvancer, hour int, location *time.Location) *DailyTickWorker {
	if location == nil {
		location = time.UTC
	}
	return &DailyTickWorker{
		service:  service,
		hour:     hour,
		location: location,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first tick
func (w *DailyTickWorker) Start() {
	w.scheduleNext()
}

func (w *DailyTickWorker) stopped() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// scheduleNext arms the timer for the next tick
func (w *DailyTickWorker) scheduleNext() {
	if w.stopped() {
		return
	}
	duration := nextTickDelay(w.now(), w.hour, w.location)
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Long waits sleep in standby and re-plan shortly before the tick
	if duration > StandbyThreshold {
		waitDuration := duration - ApproachLead
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		w.mu.Unlock()

		log.Info(LogMsgDailyTickStandby, "next_check_at", w.now().Add(waitDuration).In(w.location))
		return
	}

	w.timer = time.AfterFunc(duration, w.fire)
	w.mu.Unlock()

	log.Info(LogMsgDailyTickApproach, "next_tick_at", w.now().Add(duration).In(w.location))
}

func (w *DailyTickWorker) fire() {
	if w.stopped() {
		return
	}

	// An early firing reschedules for the remainder; anything over LateWindow
	// means the tick hour has just passed.
	rem := nextTickDelay(w.now(), w.hour, w.location)
	if rem > JitterTolerance && rem < LateWindow {
		w.scheduleNext()
		return
	}

	w.executeTick()
	w.scheduleNext()
}

// executeTick advances one day in a tracked goroutine.
// The stop check and wg.Add share mu with Shutdown so no tick starts after it waits.
func (w *DailyTickWorker) executeTick() {
	w.mu.Lock()
	if w.stopped() {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		ctx := inventory.WithTickSource(context.Background(), inventory.SourceScheduler)
		log := logger.FromContext(ctx)
		log.Info(LogMsgDailyTickStarting)

		run, err := w.service.AdvanceDay(ctx)
		if err != nil {
			log.Error(LogMsgDailyTickFailed, "error", err)
			return
		}
		log.Info(LogMsgDailyTickCompleted, "day", run.Day, "items_updated", run.ItemsUpdated)
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight tick
func (w *DailyTickWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down daily tick worker")

	w.mu.Lock()
	if !w.stopped() {
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending daily tick")
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Daily tick worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Daily tick worker shutdown timeout, a tick may still be running")
		return ctx.Err()
	}
}

// nextTickDelay is the time from now until the next hour:00 in location
func nextTickDelay(now time.Time, hour int, location *time.Location) time.Duration {
	local := now.In(location)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}
