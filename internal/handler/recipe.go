package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/membership"
	"github.com/osse101/Foodgram_Go/internal/middleware"
	"github.com/osse101/Foodgram_Go/internal/recipe"
	"github.com/osse101/Foodgram_Go/internal/shopping"
)

// IngredientAmountRequest is one ingredient entry of a recipe payload
type IngredientAmountRequest struct {
	ID     int64 `json:"id" validate:"gt=0"`
	Amount int   `json:"amount"`
}

// RecipeRequest is the body of recipe create and update. Semantic checks
// (emptiness, uniqueness, catalog lookups, ranges) happen in the recipe validator.
type RecipeRequest struct {
	Ingredients []IngredientAmountRequest `json:"ingredients" validate:"dive"`
	Tags        []int64                   `json:"tags" validate:"dive,gt=0"`
	Image       string                    `json:"image"`
	Name        string                    `json:"name"`
	Text        string                    `json:"text"`
	CookingTime int                       `json:"cooking_time"`
}

// ToInput converts the request into the write payload
func (req RecipeRequest) ToInput() domain.RecipeWriteInput {
	ingredients := make([]domain.IngredientAmount, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		ingredients[i] = domain.IngredientAmount{ID: ing.ID, Amount: ing.Amount}
	}
	return domain.RecipeWriteInput{
		Tags:        req.Tags,
		Ingredients: ingredients,
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
}

// RecipeHandler serves recipes, favorites, the shopping cart and its export
type RecipeHandler struct {
	recipes     recipe.Service
	memberships membership.Service
	shopping    shopping.Service
	pageSize    int
}

// NewRecipeHandler creates a RecipeHandler
func NewRecipeHandler(recipes recipe.Service, memberships membership.Service, shopping shopping.Service, pageSize int) *RecipeHandler {
	if pageSize < 1 {
		pageSize = domain.DefaultPageLimit
	}
	return &RecipeHandler{
		recipes:     recipes,
		memberships: memberships,
		shopping:    shopping,
		pageSize:    pageSize,
	}
}

// HandleList lists recipes newest first
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param author query int false "Author id"
// @Param tags query []string false "Tag slugs" collectionFormat(multi)
// @Param is_favorited query int false "Only favorites of the caller (1)"
// @Param is_in_shopping_cart query int false "Only recipes in the caller's cart (1)"
// @Success 200 {object} PaginatedResponse[domain.RecipeReadView]
// @Router /api/recipes [get]
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pq, ok := parsePageQuery(w, r)
	if !ok {
		return
	}
	filter, ok := parseRecipeFilter(w, r)
	if !ok {
		return
	}

	page := pq.Page(h.pageSize)
	result, err := h.recipes.List(r.Context(), middleware.GetUserID(r.Context()), filter, page)
	if err != nil {
		respondServiceError(w, r, err, ErrMsgListRecipesFailed)
		return
	}
	respondJSON(w, http.StatusOK, paginate(r, page, result))
}

// HandleGet returns one recipe
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe id"
// @Success 200 {object} domain.RecipeReadView
// @Failure 404 {object} DetailResponse
// @Router /api/recipes/{id} [get]
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	view, err := h.recipes.Get(r.Context(), middleware.GetUserID(r.Context()), id)
	if err != nil {
		respondServiceError(w, r, err, ErrMsgGetRecipeFailed)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleCreate creates a recipe authored by the caller
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Recipe"
// @Success 201 {object} domain.RecipeReadView
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} DetailResponse
// @Router /api/recipes [post]
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req RecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
		return
	}

	view, err := h.recipes.Create(r.Context(), middleware.GetUserID(r.Context()), req.ToInput())
	if err != nil {
		respondServiceError(w, r, err, ErrMsgCreateRecipeFailed)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

// HandleUpdate replaces a recipe's fields, tags and ingredients
// @Summary Update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe id"
// @Param request body RecipeRequest true "Recipe"
// @Success 200 {object} domain.RecipeReadView
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /api/recipes/{id} [patch]
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	var req RecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update recipe"); err != nil {
		return
	}

	view, err := h.recipes.Update(r.Context(), middleware.GetUserID(r.Context()), id, req.ToInput())
	if err != nil {
		respondServiceError(w, r, err, ErrMsgUpdateRecipeFailed)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleDelete deletes a recipe of the caller
// @Summary Delete recipe
// @Tags recipes
// @Param id path int true "Recipe id"
// @Success 204
// @Failure 403 {object} DetailResponse
// @Failure 404 {object} DetailResponse
// @Router /api/recipes/{id} [delete]
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	if err := h.recipes.Delete(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
		respondServiceError(w, r, err, ErrMsgDeleteRecipeFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddMembership returns a handler adding the recipe to the caller's set
// @Summary Add recipe to favorites or shopping cart
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe id"
// @Success 201 {object} domain.RecipeShort
// @Failure 400 {object} ConflictResponse
// @Failure 404 {object} DetailResponse
// @Router /api/recipes/{id}/favorite [post]
// @Router /api/recipes/{id}/shopping_cart [post]
func (h *RecipeHandler) HandleAddMembership(kind domain.MembershipKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}
		short, err := h.memberships.Add(r.Context(), kind, middleware.GetUserID(r.Context()), id)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgMembershipFailed)
			return
		}
		respondJSON(w, http.StatusCreated, short)
	}
}

// HandleRemoveMembership returns a handler removing the recipe from the caller's set
// @Summary Remove recipe from favorites or shopping cart
// @Tags recipes
// @Param id path int true "Recipe id"
// @Success 204
// @Failure 400 {object} ConflictResponse
// @Failure 404 {object} DetailResponse
// @Router /api/recipes/{id}/favorite [delete]
// @Router /api/recipes/{id}/shopping_cart [delete]
func (h *RecipeHandler) HandleRemoveMembership(kind domain.MembershipKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}
		if err := h.memberships.Remove(r.Context(), kind, middleware.GetUserID(r.Context()), id); err != nil {
			respondServiceError(w, r, err, ErrMsgMembershipFailed)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleDownloadShoppingCart exports the caller's aggregated shopping list
// @Summary Download shopping list
// @Tags recipes
// @Produce plain
// @Success 200 {string} string "Shopping list"
// @Failure 401 {object} DetailResponse
// @Router /api/recipes/download_shopping_cart [get]
func (h *RecipeHandler) HandleDownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	body, err := h.shopping.Download(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondServiceError(w, r, err, ErrMsgDownloadFailed)
		return
	}

	w.Header().Set("Content-Type", ContentTypePlainText)
	w.Header().Set("Content-Disposition", fmt.Sprintf(ContentDispositionFile, domain.ShoppingListFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// parseRecipeFilter reads the listing filters. On failure a 400 has been written.
func parseRecipeFilter(w http.ResponseWriter, r *http.Request) (domain.RecipeFilter, bool) {
	q := r.URL.Query()
	var filter domain.RecipeFilter

	if raw := q.Get(QueryParamAuthor); raw != "" {
		author, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || author <= 0 {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidQuery,
				Fields: map[string]string{QueryParamAuthor: "Must be a user id"},
			})
			return filter, false
		}
		filter.AuthorID = &author
	}

	for _, slug := range q[QueryParamTags] {
		if slug = strings.TrimSpace(slug); slug != "" {
			filter.TagSlugs = append(filter.TagSlugs, slug)
		}
	}

	filter.IsFavorited = isTruthy(q.Get(QueryParamIsFavorited))
	filter.IsInShoppingCart = isTruthy(q.Get(QueryParamIsInShoppingCart))
	return filter, true
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
