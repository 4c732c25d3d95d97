package handler

import (
	"net/http"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// AdvanceRequest asks for the stock to be aged by Days days
type AdvanceRequest struct {
	Days int `json:"days" validate:"required,min=1,max=365"`
}

// AdvanceResponse reports the runs performed and the resulting stock
type AdvanceResponse struct {
	Day   int              `json:"day"`
	Runs  []domain.TickRun `json:"runs"`
	Items []ItemResponse   `json:"items"`
}

// AdvanceFailureResponse is returned when an advance stops part-way.
// Days in Runs are committed and stay applied.
type AdvanceFailureResponse struct {
	Error         string           `json:"error"`
	CompletedDays int              `json:"completed_days"`
	Runs          []domain.TickRun `json:"runs"`
}

// TicksResponse wraps the tick history
type TicksResponse struct {
	CurrentDay int              `json:"current_day"`
	Runs       []domain.TickRun `json:"runs"`
}

// HandleListTicks returns recent day advances, newest first
// @Summary Tick history
// @Tags ticks
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum runs to return (default 20, max 365)"
// @Success 200 {object} TicksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ticks [get]
func HandleListTicks(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(r, w)
		if !ok {
			return
		}

		runs, err := svc.History(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListTicksFailed, err)
			return
		}
		day, err := svc.CurrentDay(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListTicksFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, TicksResponse{CurrentDay: day, Runs: runs})
	}
}

// HandleAdvanceDays ages the stock by the requested number of days
// @Summary Advance days
// @Description Runs one transaction per day; 409 when another advance is running.
// @Description A failure part-way keeps the committed days and reports them in completed_days.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AdvanceRequest true "Days to advance"
// @Success 200 {object} AdvanceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} AdvanceFailureResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/tick [post]
func HandleAdvanceDays(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdvanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Advance days"); err != nil {
			return
		}

		ctx := inventory.WithTickSource(r.Context(), inventory.SourceAPI)
		result, err := svc.AdvanceDays(ctx, req.Days)
		if err != nil && result != nil && len(result.Runs) > 0 {
			status, message := mapServiceErrorToUserMessage(err)
			logger.FromContext(r.Context()).Error(ErrMsgAdvanceDaysFailed+" failed",
				"error", err, "requested_days", req.Days, "completed_days", len(result.Runs))
			respondJSON(w, status, AdvanceFailureResponse{
				Error:         message,
				CompletedDays: len(result.Runs),
				Runs:          result.Runs,
			})
			return
		}
		if err != nil {
			respondServiceError(w, r, ErrMsgAdvanceDaysFailed, err)
			return
		}

		day := 0
		if n := len(result.Runs); n > 0 {
			day = result.Runs[n-1].Day
		}
		logger.FromContext(r.Context()).Info("Stock advanced", "days", req.Days, "day", day)

		respondJSON(w, http.StatusOK, AdvanceResponse{
			Day:   day,
			Runs:  result.Runs,
			Items: toItemResponses(result.Items),
		})
	}
}
