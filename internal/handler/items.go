package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/gildedrose"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// ItemResponse is a stock item as the API shows it
type ItemResponse struct {
	ID        int                 `json:"item_id"`
	Name      string              `json:"name"`
	SellIn    int                 `json:"sell_in"`
	Quality   int                 `json:"quality"`
	Category  gildedrose.Category `json:"category" swaggertype:"string"`
	Display   string              `json:"display"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ItemsResponse wraps the stock listing
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Count int            `json:"count"`
}

func toItemResponse(item domain.StockItem) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		SellIn:    item.SellIn,
		Quality:   item.Quality,
		Category:  gildedrose.Classify(item.Name),
		Display:   item.String(),
		UpdatedAt: item.UpdatedAt,
	}
}

func toItemResponses(items []domain.StockItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}

// HandleListItems returns the whole stock
// @Summary List stock
// @Description Every item in stock, in item_id order
// @Tags items
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ItemsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items [get]
func HandleListItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ItemsResponse{
			Items: toItemResponses(items),
			Count: len(items),
		})
	}
}

// HandleGetItem returns one item by exact name
// @Summary Get item
// @Description Look up a stock item by its exact, case-sensitive name
// @Tags items
// @Produce json
// @Security ApiKeyAuth
// @Param name path string true "Item name"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} NotFoundResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items/{name} [get]
func HandleGetItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		name, err := itemNameParam(r)
		if err == nil {
			err = GetValidator().ValidateVar(name, "required,max=200,itemname")
		}
		if err != nil {
			log.Warn(ErrMsgInvalidItemName, "error", err)
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidItemName,
				Fields: map[string]string{URLParamName: ErrMsgInvalidItemName},
			})
			return
		}

		item, err := svc.GetItem(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, toItemResponse(*item))
	}
}

// itemNameParam returns the decoded {name} segment. chi matches against
// RawPath when the request carries one, so only then is the value still escaped.
func itemNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, URLParamName)
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}
