package inventory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// fakeRepository is an in-memory repository.Inventory.
// Transactions work on a copy that is swapped in on Commit.
type fakeRepository struct {
	mu    sync.Mutex
	items []domain.StockItem
	runs  []domain.TickRun

	getByNameCalls int
	beginErr       error
	updateErr      error
	commitErr      error

	// lockHook runs inside GetItemsForUpdate, letting tests hold a tick open
	lockHook func()
	// readHook runs after GetItemByName has read its row
	readHook func()
	// failOnBegin fails BeginTx once this many transactions have started
	failOnBegin int
	begun       int
}

func newFakeRepository(items ...domain.Item) *fakeRepository {
	r := &fakeRepository{}
	for i, it := range items {
		r.items = append(r.items, domain.StockItem{ID: i + 1, Item: it})
	}
	return r
}

func (r *fakeRepository) ListItems(ctx context.Context) ([]domain.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.StockItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeRepository) GetItemByName(ctx context.Context, name string) (*domain.StockItem, error) {
	found, ok := r.lookup(name)
	if r.readHook != nil {
		r.readHook()
	}
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &found, nil
}

func (r *fakeRepository) lookup(name string) (domain.StockItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByNameCalls++
	for _, it := range r.items {
		if it.Name == name {
			return it, true
		}
	}
	return domain.StockItem{}, false
}

func (r *fakeRepository) runCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func (r *fakeRepository) CurrentDay(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs), nil
}

func (r *fakeRepository) ListTickRuns(ctx context.Context, limit int) ([]domain.TickRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.TickRun, len(r.runs))
	copy(out, r.runs)
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.beginErr != nil && r.begun >= r.failOnBegin {
		return nil, r.beginErr
	}
	r.begun++
	return &fakeTx{repo: r}, nil
}

type fakeTx struct {
	repo   *fakeRepository
	items  []domain.StockItem
	runs   []domain.TickRun
	closed bool
}

func (t *fakeTx) GetItemsForUpdate(ctx context.Context) ([]domain.StockItem, error) {
	if t.repo.lockHook != nil {
		t.repo.lockHook()
	}
	return t.repo.ListItems(ctx)
}

func (t *fakeTx) UpdateItems(ctx context.Context, items []domain.StockItem) error {
	if t.repo.updateErr != nil {
		return t.repo.updateErr
	}
	t.items = make([]domain.StockItem, len(items))
	copy(t.items, items)
	return nil
}

func (t *fakeTx) InsertTickRun(ctx context.Context, run *domain.TickRun) error {
	t.runs = append(t.runs, *run)
	return nil
}

func (t *fakeTx) CurrentDay(ctx context.Context) (int, error) {
	return t.repo.CurrentDay(ctx)
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	if t.repo.commitErr != nil {
		return t.repo.commitErr
	}
	t.closed = true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.items != nil {
		t.repo.items = t.items
	}
	t.repo.runs = append(t.repo.runs, t.runs...)
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

// MockPublisher is a testify mock of event.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}
