package handlers

import (
	"encoding/json"
	"net/http"

	"musclelog-backend/application/services"
	"musclelog-backend/pkg/auth"
	"musclelog-backend/pkg/common"
	"musclelog-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AnalyticsHandler serves chart and trend endpoints
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
	logger    *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *services.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, logger: logger}
}

// AnalyzeMenuRequest names the training menu to analyze
type AnalyzeMenuRequest struct {
	Name string `json:"name" validate:"required"`
}

// AnalyzeMenu handles POST /menus/analyze
func (h *AnalyticsHandler) AnalyzeMenu(w http.ResponseWriter, r *http.Request) {
	userName, err := auth.UserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusForbidden, "Access is Denied")
		return
	}

	var req AnalyzeMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "parameter is invalid.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "parameter is invalid.")
		return
	}

	trends, err := h.analytics.MenuTrends(r.Context(), userName, req.Name)
	if err != nil {
		h.logger.Warn("menu analysis failed", zap.Error(err))
		respondAppError(w, err)
		return
	}
	common.RespondItem(w, http.StatusOK, trends)
}

// UserChart handles GET /graph-data/{user_name}. Public endpoint, no
// token required.
func (h *AnalyticsHandler) UserChart(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "user_name")

	chart, err := h.analytics.UserChart(r.Context(), userName)
	if err != nil {
		h.logger.Warn("chart build failed", zap.Error(err))
		respondAppError(w, err)
		return
	}
	common.RespondData(w, http.StatusOK, map[string]interface{}{
		"pie_data":  chart.Pie,
		"line_data": chart.Line,
	})
}
