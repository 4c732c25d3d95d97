package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
)

func sampleStock() []domain.StockItem {
	return []domain.StockItem{
		{ID: 1, Item: domain.Item{Name: domain.ItemDexterityVest, SellIn: 10, Quality: 20}},
		{ID: 2, Item: domain.Item{Name: domain.ItemAgedBrie, SellIn: 2, Quality: 0}},
		{ID: 3, Item: domain.Item{Name: domain.ItemSulfuras, SellIn: 0, Quality: 80}},
	}
}

// withURLParam routes req through a chi context so URLParam resolves
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleListItems(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockInventoryService)
		svc.On("ListItems", mock.Anything).Return(sampleStock(), nil)

		req := httptest.NewRequest("GET", "/api/v1/items", nil)
		w := httptest.NewRecorder()
		HandleListItems(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []struct {
				ID       int    `json:"item_id"`
				Name     string `json:"name"`
				Category string `json:"category"`
				Display  string `json:"display"`
			} `json:"items"`
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Count)
		require.Len(t, resp.Items, 3)
		assert.Equal(t, "normal", resp.Items[0].Category)
		assert.Equal(t, "+5 Dexterity Vest, 10, 20", resp.Items[0].Display)
		assert.Equal(t, "aged_brie", resp.Items[1].Category)
		assert.Equal(t, "legendary", resp.Items[2].Category)
		svc.AssertExpectations(t)
	})

	t.Run("Service Error Is Hidden", func(t *testing.T) {
		svc := new(MockInventoryService)
		svc.On("ListItems", mock.Anything).Return(nil, errors.New("pq: relation does not exist"))

		req := httptest.NewRequest("GET", "/api/v1/items", nil)
		w := httptest.NewRecorder()
		HandleListItems(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "relation")
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}

func TestHandleGetItem(t *testing.T) {
	brie := sampleStock()[1]

	tests := []struct {
		name           string
		param          string
		setupMock      func(*MockInventoryService)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:  "Success",
			param: domain.ItemAgedBrie,
			setupMock: func(m *MockInventoryService) {
				m.On("GetItem", mock.Anything, domain.ItemAgedBrie).Return(&brie, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp ItemResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, domain.ItemAgedBrie, resp.Name)
				assert.Equal(t, 2, resp.SellIn)
			},
		},
		{
			name:  "Not Found With Suggestions",
			param: "aged brie",
			setupMock: func(m *MockInventoryService) {
				m.On("GetItem", mock.Anything, "aged brie").
					Return(nil, &inventory.NotFoundError{Name: "aged brie", Suggestions: []string{domain.ItemAgedBrie}})
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body []byte) {
				var resp NotFoundResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, ErrMsgItemNotFoundError, resp.Error)
				assert.Equal(t, "aged brie", resp.Name)
				assert.Equal(t, []string{domain.ItemAgedBrie}, resp.Suggestions)
			},
		},
		{
			name:           "Control Characters Rejected",
			param:          "Aged\x00Brie",
			setupMock:      func(m *MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty Name Rejected",
			param:          "",
			setupMock:      func(m *MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockInventoryService)
			tt.setupMock(svc)

			req := withURLParam(httptest.NewRequest("GET", "/api/v1/items/x", nil), URLParamName, tt.param)
			w := httptest.NewRecorder()
			HandleGetItem(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, w.Body.Bytes())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetItem_RoutedNames(t *testing.T) {
	brie := sampleStock()[1]

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "Escaped Space", path: "/api/v1/items/Aged%20Brie", want: domain.ItemAgedBrie},
		{name: "Literal Percent", path: "/api/v1/items/100%25%20Cotton", want: "100% Cotton"},
		{name: "Escaped Slash", path: "/api/v1/items/Aged%2FBrie", want: "Aged/Brie"},
		{name: "Escaped Percent With Raw Path", path: "/api/v1/items/50%25%2F50", want: "50%/50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockInventoryService)
			svc.On("GetItem", mock.Anything, tt.want).Return(&brie, nil).Once()

			r := chi.NewRouter()
			r.Get("/api/v1/items/{"+URLParamName+"}", HandleGetItem(svc))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
