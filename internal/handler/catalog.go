package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// HandleListTags returns every tag, unpaginated
// @Summary List tags
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Tag
// @Router /api/tags [get]
func HandleListTags(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := svc.ListTags(r.Context())
		if err != nil {
			respondServiceError(w, r, err, ErrMsgListTagsFailed)
			return
		}
		respondJSON(w, http.StatusOK, tags)
	}
}

// HandleGetTag returns one tag
// @Summary Get tag
// @Tags catalog
// @Produce json
// @Param id path int true "Tag id"
// @Success 200 {object} domain.Tag
// @Failure 404 {object} DetailResponse
// @Router /api/tags/{id} [get]
func HandleGetTag(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}
		tag, err := svc.GetTag(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgListTagsFailed)
			return
		}
		respondJSON(w, http.StatusOK, tag)
	}
}

// HandleListIngredients returns ingredients, optionally filtered by a
// case-insensitive name prefix
// @Summary List ingredients
// @Tags catalog
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} domain.Ingredient
// @Router /api/ingredients [get]
func HandleListIngredients(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefix := strings.TrimSpace(r.URL.Query().Get(QueryParamName))
		ingredients, err := svc.ListIngredients(r.Context(), prefix)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgListIngredientsFailed)
			return
		}
		logger.FromContext(r.Context()).Debug("Ingredients listed", "prefix", prefix, "count", len(ingredients))
		respondJSON(w, http.StatusOK, ingredients)
	}
}

// HandleGetIngredient returns one ingredient
// @Summary Get ingredient
// @Tags catalog
// @Produce json
// @Param id path int true "Ingredient id"
// @Success 200 {object} domain.Ingredient
// @Failure 404 {object} DetailResponse
// @Router /api/ingredients/{id} [get]
func HandleGetIngredient(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}
		ing, err := svc.GetIngredient(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgListIngredientsFailed)
			return
		}
		respondJSON(w, http.StatusOK, ing)
	}
}
