package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req RecipeRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// PaginatedResponse is the envelope of every paginated listing
type PaginatedResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// PageQuery holds the pagination query parameters
type PageQuery struct {
	Number       int `json:"page" validate:"gte=0,max=1000000"`
	Limit        int `json:"limit" validate:"gte=0"`
	RecipesLimit int `json:"recipes_limit" validate:"gte=0"`
}

// parseIDParam reads the {id} URL parameter. On failure a 404 has been written.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, URLParamID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusNotFound, DetailResponse{Detail: ErrMsgInvalidID})
		return 0, false
	}
	return id, true
}

// parsePageQuery reads page, limit and recipes_limit. On failure a 400 has been written.
func parsePageQuery(w http.ResponseWriter, r *http.Request) (PageQuery, bool) {
	q := r.URL.Query()
	var pq PageQuery
	fields := make(map[string]string)

	for name, dst := range map[string]*int{
		QueryParamPage:         &pq.Number,
		QueryParamLimit:        &pq.Limit,
		QueryParamRecipesLimit: &pq.RecipesLimit,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields[name] = "Must be an integer"
			continue
		}
		*dst = n
	}

	if len(fields) == 0 {
		if err := GetValidator().ValidateStruct(pq); err != nil {
			fields = FormatValidationError(err)
		}
	}
	if len(fields) > 0 {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{Error: ErrMsgInvalidQuery, Fields: fields})
		return PageQuery{}, false
	}
	return pq, true
}

// Page converts the query into a normalized domain page
func (pq PageQuery) Page(defaultLimit int) domain.Page {
	return domain.Page{Number: pq.Number, Limit: pq.Limit}.Normalize(defaultLimit)
}

// paginate builds the envelope with next/previous links relative to the request URL
func paginate[T any](r *http.Request, page domain.Page, result *domain.PageResult[T]) PaginatedResponse[T] {
	resp := PaginatedResponse[T]{Count: result.Count, Results: result.Items}
	if resp.Results == nil {
		resp.Results = []T{}
	}
	if result.HasNext(page) {
		next := pageURL(r, page.Number+1, page.Limit)
		resp.Next = &next
	}
	if page.Number > 1 {
		prev := pageURL(r, page.Number-1, page.Limit)
		resp.Previous = &prev
	}
	return resp
}

func pageURL(r *http.Request, number, limit int) string {
	u := url.URL{Path: r.URL.Path}
	q := r.URL.Query()
	q.Set(QueryParamPage, strconv.Itoa(number))
	q.Set(QueryParamLimit, strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String()
}
