package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkin-service/internal/circuitbreaker"
)

type fakeChecker struct {
	err error
}

func (f *fakeChecker) Check() error {
	return f.err
}

func healthRouter(h *HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.Register(router)
	return router
}

func TestLivenessAlwaysOK(t *testing.T) {
	router := healthRouter(NewHealthHandler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestReadinessWithoutDependencies(t *testing.T) {
	router := healthRouter(NewHealthHandler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadinessHealthyDependency(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("mongodb", &fakeChecker{})
	router := healthRouter(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
}

func TestReadinessUnhealthyDependency(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("mongodb", &fakeChecker{err: errors.New("connection refused")})
	router := healthRouter(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestReadinessOpenCircuitBreaker(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "mongodb_workers",
	})
	err := cb.Execute(context.Background(), func() error {
		return errors.New("store down")
	})
	require.Error(t, err)
	require.True(t, cb.IsOpen())

	h := NewHealthHandler()
	h.RegisterCircuitBreaker("mongodb_workers", cb)
	router := healthRouter(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb_workers_circuit":"open"`)
}
