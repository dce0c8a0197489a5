package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"musclelog-backend/application/services"
	"musclelog-backend/pkg/auth"
	"musclelog-backend/pkg/common"
	"musclelog-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RelationHandler handles follow-graph HTTP requests
type RelationHandler struct {
	relations *services.RelationService
	logger    *zap.Logger
}

// NewRelationHandler creates a new relation handler
func NewRelationHandler(relations *services.RelationService, logger *zap.Logger) *RelationHandler {
	return &RelationHandler{relations: relations, logger: logger}
}

// FollowRequest is the request body for creating a follow edge
type FollowRequest struct {
	FollowingName string `json:"following_name" validate:"required"`
}

// Follow handles POST /follows
func (h *RelationHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerName, err := auth.UserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusForbidden, "Access is Denied")
		return
	}

	var req FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "not set follwing user name.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "not set follwing user name.")
		return
	}

	relation, err := h.relations.Follow(r.Context(), followerName, req.FollowingName)
	if err != nil {
		h.logger.Warn("follow failed", zap.Error(err))
		respondAppError(w, err)
		return
	}
	common.RespondItem(w, http.StatusOK, relation)
}

// Unfollow handles DELETE /follows/{id}
func (h *RelationHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerName, err := auth.UserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusForbidden, "Access is Denied")
		return
	}

	relationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "not set parameter.")
		return
	}

	if _, err := h.relations.Unfollow(r.Context(), followerName, relationID); err != nil {
		h.logger.Warn("unfollow failed", zap.Error(err))
		respondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, common.MessageResponse{Message: "success unfollow"})
}

// ListFollowing handles GET /follows
func (h *RelationHandler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	followerName, err := auth.UserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusForbidden, "Access is Denied")
		return
	}

	relations, err := h.relations.ListFollowing(r.Context(), followerName)
	if err != nil {
		h.logger.Warn("listing follows failed", zap.Error(err))
		respondAppError(w, err)
		return
	}
	common.RespondData(w, http.StatusOK, relations)
}
