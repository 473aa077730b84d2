package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/workers/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/workers/:id", "200"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/workers/abc", nil))
	require.Equal(t, http.StatusOK, w.Code)

	after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/workers/:id", "200"))
	assert.Equal(t, before+1, after, "labelled by route template, not the raw path")
}

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(SearchesTotal.WithLabelValues("cached"))
	RecordSearch(5*time.Millisecond, "cached")
	after := testutil.ToFloat64(SearchesTotal.WithLabelValues("cached"))
	assert.Equal(t, before+1, after)
}

func TestRecordCheckIn(t *testing.T) {
	before := testutil.ToFloat64(CheckInsTotal.WithLabelValues("duplicate"))
	RecordCheckIn("duplicate")
	after := testutil.ToFloat64(CheckInsTotal.WithLabelValues("duplicate"))
	assert.Equal(t, before+1, after)
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))
	RecordCacheOperation("get", "hit")
	after := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))
	assert.Equal(t, before+1, after)
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(42, 200)
	assert.Equal(t, float64(42), testutil.ToFloat64(CacheSize))
	assert.Equal(t, float64(200), testutil.ToFloat64(CacheCapacity))
}
