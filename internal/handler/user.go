package handler

import (
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/follow"
	"github.com/osse101/Foodgram_Go/internal/middleware"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// UserHandler serves user profiles and subscriptions
type UserHandler struct {
	users    user.Service
	follows  follow.Service
	pageSize int
}

// NewUserHandler creates a UserHandler
func NewUserHandler(users user.Service, follows follow.Service, pageSize int) *UserHandler {
	if pageSize < 1 {
		pageSize = domain.DefaultPageLimit
	}
	return &UserHandler{users: users, follows: follows, pageSize: pageSize}
}

// HandleList lists users
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} PaginatedResponse[domain.UserView]
// @Router /api/users [get]
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pq, ok := parsePageQuery(w, r)
	if !ok {
		return
	}
	page := pq.Page(h.pageSize)
	result, err := h.users.List(r.Context(), middleware.GetUserID(r.Context()), page)
	if err != nil {
		respondServiceError(w, r, err, ErrMsgListUsersFailed)
		return
	}
	respondJSON(w, http.StatusOK, paginate(r, page, result))
}

// HandleGet returns one user
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} domain.UserView
// @Failure 404 {object} DetailResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	view, err := h.users.Get(r.Context(), middleware.GetUserID(r.Context()), id)
	if err != nil {
		respondServiceError(w, r, err, ErrMsgGetUserFailed)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleMe returns the caller's profile
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} domain.UserView
// @Failure 401 {object} DetailResponse
// @Router /api/users/me [get]
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	view, err := h.users.Me(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondServiceError(w, r, err, ErrMsgGetUserFailed)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleSubscriptions lists authors the caller follows with a recipe preview
// @Summary List subscriptions
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param recipes_limit query int false "Recipes per author"
// @Success 200 {object} PaginatedResponse[domain.Subscription]
// @Failure 401 {object} DetailResponse
// @Router /api/users/subscriptions [get]
func (h *UserHandler) HandleSubscriptions(w http.ResponseWriter, r *http.Request) {
	pq, ok := parsePageQuery(w, r)
	if !ok {
		return
	}
	page := pq.Page(h.pageSize)
	result, err := h.follows.ListSubscriptions(r.Context(), middleware.GetUserID(r.Context()), page, pq.RecipesLimit)
	if err != nil {
		respondServiceError(w, r, err, ErrMsgListSubscriptionsFailed)
		return
	}
	respondJSON(w, http.StatusOK, paginate(r, page, result))
}

// HandleSubscribe follows an author
// @Summary Subscribe to author
// @Tags users
// @Produce json
// @Param id path int true "Author id"
// @Param recipes_limit query int false "Recipes in the preview"
// @Success 201 {object} domain.Subscription
// @Failure 400 {object} ConflictResponse
// @Failure 404 {object} DetailResponse
// @Router /api/users/{id}/subscribe [post]
func (h *UserHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	pq, ok := parsePageQuery(w, r)
	if !ok {
		return
	}
	sub, err := h.follows.Subscribe(r.Context(), middleware.GetUserID(r.Context()), id, pq.RecipesLimit)
	if err != nil {
		respondServiceError(w, r, err, ErrMsgSubscribeFailed)
		return
	}
	respondJSON(w, http.StatusCreated, sub)
}

// HandleUnsubscribe stops following an author
// @Summary Unsubscribe from author
// @Tags users
// @Param id path int true "Author id"
// @Success 204
// @Failure 400 {object} ConflictResponse
// @Failure 404 {object} DetailResponse
// @Router /api/users/{id}/subscribe [delete]
func (h *UserHandler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if err := h.follows.Unsubscribe(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
		respondServiceError(w, r, err, ErrMsgSubscribeFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
