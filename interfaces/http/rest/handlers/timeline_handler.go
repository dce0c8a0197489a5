package handlers

import (
	"net/http"

	"musclelog-backend/application/services"
	"musclelog-backend/pkg/auth"
	"musclelog-backend/pkg/common"

	"go.uber.org/zap"
)

// TimelineHandler serves the social timeline
type TimelineHandler struct {
	timeline *services.TimelineService
	logger   *zap.Logger
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timeline *services.TimelineService, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{timeline: timeline, logger: logger}
}

// Timeline handles GET /timelines
func (h *TimelineHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	userName, err := auth.UserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusForbidden, "Access is Denied")
		return
	}

	entries, err := h.timeline.Timeline(r.Context(), userName)
	if err != nil {
		h.logger.Warn("timeline failed", zap.Error(err))
		respondAppError(w, err)
		return
	}
	common.RespondItem(w, http.StatusOK, entries)
}
