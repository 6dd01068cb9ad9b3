package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/middleware"
)

const testSecret = "router-test-secret-long-enough-for-hs256"

// Routes rejected by auth middleware never reach their services, so nil
// services are enough to exercise the route table.
func newTestRouter(t *testing.T) (http.Handler, *middleware.Authenticator) {
	t.Helper()
	auth := middleware.NewAuthenticator(testSecret)
	router := NewRouter(Options{CORSOrigins: []string{"*"}}, Dependencies{Authenticator: auth})
	return router, auth
}

func TestRouter_OpsEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRouter_WritesRequireAuthentication(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/recipes"},
		{http.MethodPatch, "/api/recipes/1"},
		{http.MethodDelete, "/api/recipes/1"},
		{http.MethodPost, "/api/recipes/1/favorite"},
		{http.MethodDelete, "/api/recipes/1/favorite"},
		{http.MethodPost, "/api/recipes/1/shopping_cart"},
		{http.MethodDelete, "/api/recipes/1/shopping_cart"},
		{http.MethodGet, "/api/recipes/download_shopping_cart"},
		{http.MethodGet, "/api/users/me"},
		{http.MethodGet, "/api/users/subscriptions"},
		{http.MethodPost, "/api/users/2/subscribe"},
		{http.MethodDelete, "/api/users/2/subscribe"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}")))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"detail":"`+middleware.ErrMsgNotAuthed+`"}`, rec.Body.String())
		})
	}
}

func TestRouter_InvalidTokenRejectedAndRecorded(t *testing.T) {
	auth := middleware.NewAuthenticator(testSecret)
	detector := NewSuspiciousActivityDetector(0, 0)
	auth.OnRejected(func(r *http.Request) { detector.RecordFailedAuth(extractIP(r, nil)) })

	handler := auth.Identify(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	req.RemoteAddr = "198.51.100.4:1000"
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, detector.FailedAuthCount("198.51.100.4"))
}

func TestRouter_ValidTokenPassesAuth(t *testing.T) {
	router, auth := newTestRouter(t)
	token, err := auth.IssueToken(3, time.Minute)
	require.NoError(t, err)

	// Malformed ids are rejected by the handler after authentication succeeds
	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/not-a-number", nil)
	req.Header.Set("Authorization", "Token "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SecurityHeadersOnEveryResponse(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}
