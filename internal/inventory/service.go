package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/gildedrose"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// Service defines the interface for stock operations
type Service interface {
	AdvanceDay(ctx context.Context) (*domain.TickRun, error)
	AdvanceDays(ctx context.Context, days int) (*domain.TickResult, error)
	ListItems(ctx context.Context) ([]domain.StockItem, error)
	GetItem(ctx context.Context, name string) (*domain.StockItem, error)
	History(ctx context.Context, limit int) ([]domain.TickRun, error)
	CurrentDay(ctx context.Context) (int, error)
	RefreshGauges(ctx context.Context) error
	GetCacheStats() CacheStats
	Shutdown(ctx context.Context) error
}

type tickSourceKey struct{}

// WithTickSource tags ctx with who asked for a day advance
func WithTickSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, tickSourceKey{}, source)
}

// TickSource returns the source set by WithTickSource, or SourceUnknown
func TickSource(ctx context.Context) string {
	if s, ok := ctx.Value(tickSourceKey{}).(string); ok && s != "" {
		return s
	}
	return SourceUnknown
}

// Option configures the service
type Option func(*service)

// WithClock overrides time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithCacheConfig sizes the item cache
func WithCacheConfig(cfg CacheConfig) Option {
	return func(s *service) { s.cache = newStockCache(cfg) }
}

// WithEngine swaps the aging engine
func WithEngine(engine *gildedrose.Engine) Option {
	return func(s *service) { s.engine = engine }
}

type service struct {
	repo      repository.Inventory
	engine    *gildedrose.Engine
	publisher event.Publisher
	cache     *stockCache
	now       func() time.Time

	tickMu sync.Mutex

	// stateMu orders wg.Add in enter against the flag store in Shutdown
	stateMu      sync.Mutex
	shuttingDown atomic.Bool
	wg           sync.WaitGroup
}

// NewService creates a new inventory service. publisher may be nil.
func NewService(repo repository.Inventory, publisher event.Publisher, opts ...Option) Service {
	s := &service{
		repo:      repo,
		engine:    gildedrose.NewEngine(),
		publisher: publisher,
		cache:     newStockCache(DefaultCacheConfig()),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// enter registers an operation with Shutdown's wait group.
// It reports false once shutdown has begun.
func (s *service) enter() bool {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if s.shuttingDown.Load() {
		return false
	}
	s.wg.Add(1)
	return true
}

// AdvanceDay ages the whole stock by one day in a single transaction
func (s *service) AdvanceDay(ctx context.Context) (*domain.TickRun, error) {
	if !s.enter() {
		return nil, domain.ErrShuttingDown
	}
	defer s.wg.Done()

	if !s.tickMu.TryLock() {
		logger.FromContext(ctx).Warn(LogMsgTickRejected)
		metrics.DayTicks.WithLabelValues(metrics.StatusConflict).Inc()
		return nil, domain.ErrTickInProgress
	}
	defer s.tickMu.Unlock()

	run, err := s.advanceLocked(ctx)
	if err != nil {
		metrics.DayTicks.WithLabelValues(metrics.StatusFailure).Inc()
		logger.FromContext(ctx).Error(LogMsgTickFailed, "error", err)
		return nil, err
	}
	return run, nil
}

// AdvanceDays runs days consecutive ticks while holding the tick lock.
// Each day commits on its own; a failure part-way leaves earlier days applied
// and returns them in the result alongside the error.
func (s *service) AdvanceDays(ctx context.Context, days int) (*domain.TickResult, error) {
	if days < domain.MinDaysPerRequest || days > domain.MaxDaysPerRequest {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", domain.ErrInvalidDays, days, domain.MinDaysPerRequest, domain.MaxDaysPerRequest)
	}
	if !s.enter() {
		return nil, domain.ErrShuttingDown
	}
	defer s.wg.Done()

	if !s.tickMu.TryLock() {
		logger.FromContext(ctx).Warn(LogMsgTickRejected)
		metrics.DayTicks.WithLabelValues(metrics.StatusConflict).Inc()
		return nil, domain.ErrTickInProgress
	}
	defer s.tickMu.Unlock()

	result := &domain.TickResult{Runs: make([]domain.TickRun, 0, days)}
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		run, err := s.advanceLocked(ctx)
		if err != nil {
			metrics.DayTicks.WithLabelValues(metrics.StatusFailure).Inc()
			logger.FromContext(ctx).Error(LogMsgTickFailed, "error", err, "completed_days", i)
			return result, err
		}
		result.Runs = append(result.Runs, *run)
	}

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	result.Items = items
	return result, nil
}

// advanceLocked performs one tick; the caller holds tickMu
func (s *service) advanceLocked(ctx context.Context) (*domain.TickRun, error) {
	log := logger.FromContext(ctx)
	started := s.now()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	stock, err := tx.GetItemsForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock stock: %w", err)
	}

	counts := s.engine.UpdateStock(stock)

	if len(stock) > 0 {
		if err := tx.UpdateItems(ctx, stock); err != nil {
			return nil, fmt.Errorf("failed to update stock: %w", err)
		}
	}

	day, err := tx.CurrentDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read current day: %w", err)
	}

	finished := s.now()
	run := &domain.TickRun{
		RunID:        uuid.New(),
		Day:          day + 1,
		ItemsUpdated: len(stock),
		StartedAt:    started,
		FinishedAt:   finished,
	}
	if err := tx.InsertTickRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record tick run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit tick: %w", err)
	}

	s.cache.Clear()

	duration := finished.Sub(started)
	categories := make(map[string]int, len(counts))
	for c, n := range counts {
		categories[c.String()] = n
	}
	metrics.DayTicks.WithLabelValues(metrics.StatusSuccess).Inc()
	metrics.TickDuration.Observe(duration.Seconds())
	metrics.CurrentDay.Set(float64(run.Day))
	metrics.RecordStock(stock)

	source := TickSource(ctx)
	log.Info(LogMsgDayAdvanced, "day", run.Day, "run_id", run.RunID, "items", run.ItemsUpdated, "source", source)

	if s.publisher != nil {
		evt := event.NewDayAdvancedEvent(run.RunID, run.Day, run.ItemsUpdated, categories, duration, source)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			// The tick is already committed; delivery is best effort
			log.Warn(LogMsgPublishFailed, "error", err, "run_id", run.RunID)
		}
	}

	return run, nil
}

// ListItems returns the full stock in item_id order
func (s *service) ListItems(ctx context.Context) ([]domain.StockItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// GetItem looks up a single item by exact name
func (s *service) GetItem(ctx context.Context, name string) (*domain.StockItem, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if cached, ok := s.cache.Get(name); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "item", name)
		return &cached, nil
	}

	// A tick committing during the read bumps the generation and the row is not cached
	generation := s.cache.Generation()
	item, err := s.repo.GetItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, s.notFound(ctx, name)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	s.cache.SetIfCurrent(*item, generation)
	return item, nil
}

func (s *service) notFound(ctx context.Context, name string) error {
	nfe := &NotFoundError{Name: name}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("Could not load names for suggestions", "error", err)
		return nfe
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	nfe.Suggestions = suggestNames(name, names, MaxSuggestions)
	return nfe
}

// History returns the most recent tick runs, newest first
func (s *service) History(ctx context.Context, limit int) ([]domain.TickRun, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	runs, err := s.repo.ListTickRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tick runs: %w", err)
	}
	return runs, nil
}

// CurrentDay is the number of committed day advances
func (s *service) CurrentDay(ctx context.Context) (int, error) {
	day, err := s.repo.CurrentDay(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read current day: %w", err)
	}
	return day, nil
}

// RefreshGauges republishes the stock snapshot to Prometheus
func (s *service) RefreshGauges(ctx context.Context) error {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}
	day, err := s.repo.CurrentDay(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current day: %w", err)
	}
	metrics.RecordStock(items)
	metrics.CurrentDay.Set(float64(day))
	logger.FromContext(ctx).Debug(LogMsgGaugesRefreshed, "items", len(items), "day", day)
	return nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.Stats()
}

// Shutdown rejects new ticks and waits for the running one to finish
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	s.stateMu.Lock()
	s.shuttingDown.Store(true)
	s.stateMu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}
