package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
)

type mockInventory struct {
	mock.Mock
}

func (m *mockInventory) AdvanceDay(ctx context.Context) (*domain.TickRun, error) {
	args := m.Called(ctx)
	run, _ := args.Get(0).(*domain.TickRun)
	return run, args.Error(1)
}

func (m *mockInventory) AdvanceDays(ctx context.Context, days int) (*domain.TickResult, error) {
	args := m.Called(ctx, days)
	res, _ := args.Get(0).(*domain.TickResult)
	return res, args.Error(1)
}

func (m *mockInventory) ListItems(ctx context.Context) ([]domain.StockItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.StockItem)
	return items, args.Error(1)
}

func (m *mockInventory) GetItem(ctx context.Context, name string) (*domain.StockItem, error) {
	args := m.Called(ctx, name)
	item, _ := args.Get(0).(*domain.StockItem)
	return item, args.Error(1)
}

func (m *mockInventory) History(ctx context.Context, limit int) ([]domain.TickRun, error) {
	args := m.Called(ctx, limit)
	runs, _ := args.Get(0).([]domain.TickRun)
	return runs, args.Error(1)
}

func (m *mockInventory) CurrentDay(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockInventory) RefreshGauges(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockInventory) GetCacheStats() inventory.CacheStats {
	return m.Called().Get(0).(inventory.CacheStats)
}

func (m *mockInventory) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type okPool struct{}

func (okPool) Ping(ctx context.Context) error { return nil }
func (okPool) Close()                         {}

const testAPIKey = "router-test-key"

func newTestRouter(svc *mockInventory) http.Handler {
	return NewRouter(Options{
		APIKey:      testAPIKey,
		ServiceName: "gilded-rose",
		DBPool:      okPool{},
		Inventory:   svc,
	})
}

func TestRouter(t *testing.T) {
	brie := &domain.StockItem{ID: 2, Item: domain.Item{Name: domain.ItemAgedBrie, SellIn: 2, Quality: 0}}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		withKey        bool
		setupMock      func(*mockInventory)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "healthz is public", method: "GET", path: "/healthz",
			setupMock: func(m *mockInventory) {}, expectedStatus: http.StatusOK,
		},
		{
			name: "readyz is public", method: "GET", path: "/readyz",
			setupMock: func(m *mockInventory) {}, expectedStatus: http.StatusOK,
		},
		{
			name: "version is public", method: "GET", path: "/version",
			setupMock: func(m *mockInventory) {}, expectedStatus: http.StatusOK,
			expectedBody: `"service":"gilded-rose"`,
		},
		{
			name: "metrics is public", method: "GET", path: "/metrics",
			setupMock: func(m *mockInventory) {}, expectedStatus: http.StatusOK,
		},
		{
			name: "items require key", method: "GET", path: "/api/v1/items",
			setupMock: func(m *mockInventory) {}, expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "list items", method: "GET", path: "/api/v1/items", withKey: true,
			setupMock: func(m *mockInventory) {
				m.On("ListItems", mock.Anything).Return([]domain.StockItem{*brie}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"display":"Aged Brie, 2, 0"`,
		},
		{
			name: "get item by escaped name", method: "GET", path: "/api/v1/items/Aged%20Brie", withKey: true,
			setupMock: func(m *mockInventory) {
				m.On("GetItem", mock.Anything, domain.ItemAgedBrie).Return(brie, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"category":"aged_brie"`,
		},
		{
			name: "advance conflict", method: "POST", path: "/api/v1/admin/tick", body: `{"days":1}`, withKey: true,
			setupMock: func(m *mockInventory) {
				m.On("AdvanceDays", mock.Anything, 1).Return(nil, domain.ErrTickInProgress)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "advance requires post", method: "GET", path: "/api/v1/admin/tick", withKey: true,
			setupMock: func(m *mockInventory) {}, expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name: "cache stats", method: "GET", path: "/api/v1/admin/cache/stats", withKey: true,
			setupMock: func(m *mockInventory) {
				m.On("GetCacheStats").Return(inventory.CacheStats{Hits: 1})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"hits":1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockInventory)
			tt.setupMock(svc)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.withKey {
				req.Header.Set(HeaderAPIKey, testAPIKey)
			}
			rec := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
			svc.AssertExpectations(t)
		})
	}
}
