package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/Foodgram_Go/internal/event"
	"github.com/osse101/Foodgram_Go/internal/eventlog"
	"github.com/osse101/Foodgram_Go/internal/middleware"
)

// HandleListActivity returns the caller's most recent logged events
// @Summary Current user activity
// @Tags users
// @Produce json
// @Param type query string false "Event type, e.g. recipe.created"
// @Param limit query int false "Maximum events returned"
// @Success 200 {array} eventlog.Event
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} DetailResponse
// @Router /api/users/me/activity [get]
func HandleListActivity(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		fields := map[string]string{}

		limit := 0
		if raw := q.Get(QueryParamLimit); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				fields[QueryParamLimit] = "Must be a positive integer"
			}
			limit = n
		}

		eventType := q.Get(QueryParamType)
		if eventType != "" && !knownEventType(eventType) {
			fields[QueryParamType] = "Unknown event type"
		}

		if len(fields) > 0 {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{Error: ErrMsgInvalidQuery, Fields: fields})
			return
		}

		events, err := svc.Recent(r.Context(), middleware.GetUserID(r.Context()), eventType, limit)
		if err != nil {
			respondServiceError(w, r, err, ErrMsgListActivityFailed)
			return
		}
		respondJSON(w, http.StatusOK, events)
	}
}

func knownEventType(raw string) bool {
	for _, t := range event.AllTypes {
		if string(t) == raw {
			return true
		}
	}
	return false
}
