package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teleka/teleka-taxi/internal/service/auth"
	"github.com/teleka/teleka-taxi/pkg/logger"
)

func newTestMiddleware() (*Middleware, *auth.Service) {
	log := logger.InitLogger("test", logger.LevelError)
	authSvc := auth.NewService("admin", "admin123", "test-secret", time.Hour, log)
	return NewMiddleware(authSvc, "*", log), authSvc
}

func protected(m *Middleware) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /api/initialize", m.RequireOperator(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	return m.Auth(mux)
}

func TestRequireOperator_NoToken(t *testing.T) {
	m, _ := newTestMiddleware()
	h := protected(m)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/initialize", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireOperator_ValidToken(t *testing.T) {
	m, authSvc := newTestMiddleware()
	h := protected(m)

	session, err := authSvc.Login(t.Context(), "admin", "admin123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/initialize", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_BadToken(t *testing.T) {
	m, _ := newTestMiddleware()
	h := protected(m)

	req := httptest.NewRequest(http.MethodPost, "/api/initialize", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	m, _ := newTestMiddleware()
	h := protected(m)

	req := httptest.NewRequest(http.MethodPost, "/api/initialize", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_AnonymousPassesUnprotectedRoutes(t *testing.T) {
	m, _ := newTestMiddleware()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/requests", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := m.Auth(mux)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/requests", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := extractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = extractBearerToken("Bearer")
	assert.Error(t, err)

	_, err = extractBearerToken("Bearer ")
	assert.Error(t, err)
}
