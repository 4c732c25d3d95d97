package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// Publish never fails the caller: a failed first attempt is retried asynchronously.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewResilientPublisher creates a publisher writing exhausted events to deadLetterPath
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		shutdown:   make(chan struct{}),
	}, nil
}

// Publish attempts delivery once and schedules retries on failure
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	select {
	case <-p.shutdown:
		logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", event.Type)
		p.writeDeadLetter(event, 1, err)
		return nil
	default:
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.maxRetries)

	p.wg.Add(1)
	go p.retryLoop(event, err)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()

	// Detached context: the publishing request may already be gone
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, attempt))
		select {
		case <-timer.C:
		case <-p.shutdown:
			timer.Stop()
			log.Warn(LogMsgEventDroppedShutdown, "event_type", event.Type, "attempt", attempt)
			p.writeDeadLetter(event, attempt, lastErr)
			return
		}

		if lastErr = p.inner.Publish(ctx, event); lastErr == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", event.Type, "attempts", p.maxRetries+1)
	p.writeDeadLetter(event, p.maxRetries+1, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterFailed, "event_type", event.Type, "error", err)
	}
}

// Shutdown stops pending retries, dead-lettering what is left, and closes the file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
