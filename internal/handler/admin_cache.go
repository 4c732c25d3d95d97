package handler

import (
	"net/http"

	"github.com/osse101/GildedRose_Go/internal/inventory"
)

// HandleGetCacheStats returns item cache statistics
// @Summary Get item cache stats
// @Description Returns cache hit/miss statistics for monitoring (admin only)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} inventory.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func HandleGetCacheStats(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.GetCacheStats())
	}
}
