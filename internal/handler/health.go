package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// ReadinessTimeout bounds each dependency check made by /readyz
const ReadinessTimeout = 2 * time.Second

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

var errNoDatabase = errors.New("database pool not configured")

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the process is serving requests
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports whether the database answers a ping
// @Summary Readiness check
// @Description Returns OK if the service can reach PostgreSQL
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: HealthStatusOK, Checks: map[string]string{"database": HealthStatusOK}}

		if err := pingDatabase(r.Context(), dbPool); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "check", "database", "error", err)
			resp.Status = HealthStatusUnavailable
			resp.Checks["database"] = "database connection failed"
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

func pingDatabase(ctx context.Context, dbPool database.Pool) error {
	if dbPool == nil {
		return errNoDatabase
	}
	ctx, cancel := context.WithTimeout(ctx, ReadinessTimeout)
	defer cancel()
	return dbPool.Ping(ctx)
}
