package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool Enqueuer
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop.
// A tick is skipped when the pool queue is full rather than stalling the ticker.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.ScheduleWithDelay(name, interval, interval, job)
}

// ScheduleWithDelay is Schedule with a different first run; a zero delay runs immediately
func (s *Scheduler) ScheduleWithDelay(name string, delay, interval time.Duration, job worker.Job) {
	log := logger.FromContext(context.Background())
	log.Info("Scheduled job registered", "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		first := time.NewTimer(delay)
		defer first.Stop()
		select {
		case <-first.C:
			s.enqueue(name, job)
		case <-s.quit:
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(name, job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(name string, job worker.Job) {
	if !s.workerPool.TryEnqueue(job) {
		logger.FromContext(context.Background()).Warn("Scheduled job skipped", "job", name)
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
