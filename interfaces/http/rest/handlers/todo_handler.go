package handlers

import (
	"encoding/json"
	"net/http"

	"musclelog-backend/application/services"
	"musclelog-backend/domain/workout"
	"musclelog-backend/pkg/auth"
	"musclelog-backend/pkg/common"
	"musclelog-backend/pkg/utils"

	"go.uber.org/zap"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todos  *services.TodoService
	logger *zap.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todos *services.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{todos: todos, logger: logger}
}

// CreateTodoRequest is the request body for registering a todo
type CreateTodoRequest struct {
	UserName  string `json:"user_name" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Weight    int    `json:"weight" validate:"gte=0"`
	Set       int    `json:"set" validate:"gte=0"`
	ClearPlan string `json:"clear_plan" validate:"required,datetime=2006-01-02"`
}

// UpdateTodoRequest is the request body for updating an active todo
type UpdateTodoRequest struct {
	ID        int64  `json:"id" validate:"required"`
	UserName  string `json:"user_name" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Weight    int    `json:"weight" validate:"gte=0"`
	Set       int    `json:"set" validate:"gte=0"`
	ClearPlan string `json:"clear_plan" validate:"required,datetime=2006-01-02"`
}

// CompleteTodoRequest is the request body for marking a todo cleared
type CompleteTodoRequest struct {
	ID        int64  `json:"id" validate:"required"`
	ClearDate string `json:"clear_date" validate:"required,datetime=2006-01-02"`
	Comment   string `json:"comment"`
}

// Create handles POST /todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "not set parameter.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "not set parameter.")
		return
	}

	userName, err := auth.UserFromContext(r.Context())
	if err != nil || userName != req.UserName {
		common.RespondError(w, http.StatusForbidden, "Access is Denied")
		return
	}

	todo, err := h.todos.Create(r.Context(), workout.TodoDraft{
		UserName:  req.UserName,
		Name:      req.Name,
		Weight:    req.Weight,
		Set:       req.Set,
		ClearPlan: req.ClearPlan,
	})
	if err != nil {
		h.respondErr(w, err, "creating todo")
		return
	}
	common.RespondItem(w, http.StatusOK, todo)
}

// Update handles PUT /todos
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "not set parameter.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "not set parameter.")
		return
	}

	// A caller may only touch rows carrying their own user name.
	userName, err := auth.UserFromContext(r.Context())
	if err != nil || userName != req.UserName {
		common.RespondError(w, http.StatusForbidden, "Access is Denied")
		return
	}

	todo, err := h.todos.Update(r.Context(), workout.TodoPatch{
		ID:        req.ID,
		Name:      req.Name,
		Weight:    req.Weight,
		Set:       req.Set,
		ClearPlan: req.ClearPlan,
	})
	if err != nil {
		h.respondErr(w, err, "updating todo")
		return
	}
	common.RespondItem(w, http.StatusOK, todo)
}

// Complete handles POST /todos/complete
func (h *TodoHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req CompleteTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "not set parameter.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "not set parameter.")
		return
	}

	if _, err := auth.UserFromContext(r.Context()); err != nil {
		common.RespondError(w, http.StatusForbidden, "Access is Denied")
		return
	}

	completion, err := h.todos.Complete(r.Context(), req.ID, req.ClearDate, req.Comment)
	if err != nil {
		h.respondErr(w, err, "completing todo")
		return
	}
	common.RespondItem(w, http.StatusOK, map[string]interface{}{
		"id":         req.ID,
		"clear_date": completion.ClearDate,
	})
}

// Overview handles GET /todos
func (h *TodoHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userName, err := auth.UserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusForbidden, "Access is Denied")
		return
	}

	overview, err := h.todos.Overview(r.Context(), userName)
	if err != nil {
		h.respondErr(w, err, "listing todos")
		return
	}
	common.RespondData(w, http.StatusOK, overview)
}

func (h *TodoHandler) respondErr(w http.ResponseWriter, err error, operation string) {
	h.logger.Warn("todo request failed", zap.String("operation", operation), zap.Error(err))
	respondAppError(w, err)
}
