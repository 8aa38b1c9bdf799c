package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	RequestCounter.Reset()
	RequestDuration.Reset()

	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Metrics carry the service namespace.
	assert.Equal(t, 1, testutil.CollectAndCount(RequestCounter, "studyhub_http_requests_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(RequestDuration, "studyhub_http_request_duration_seconds"))

	counted := testutil.ToFloat64(RequestCounter.WithLabelValues(http.MethodGet, "/api/health", "200"))
	assert.Equal(t, 1.0, counted)
}
