package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap/zaptest"
)

func TestHTTPMetrics_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mp, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{}, zaptest.NewLogger(t))
	require.NoError(t, err)

	router := gin.New()
	router.Use(HTTPMetrics(mp, zaptest.NewLogger(t)))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPMetrics_RecordsRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reader := sdkmetric.NewManualReader()
	mp := telemetry.NewMeterProviderWithReader(telemetry.MetricsConfig{ServiceName: "test"}, zaptest.NewLogger(t), sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	router := gin.New()
	router.Use(HTTPMetrics(mp, zaptest.NewLogger(t)))
	router.GET("/api/donations/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for i := 0; i < 2; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/donations/abc", nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total *metricdata.Sum[int64]
	var sawDuration bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch m.Name {
			case "http_server_request_total":
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok)
				total = &sum
			case "http_server_request_duration_seconds":
				sawDuration = true
			}
		}
	}
	require.NotNil(t, total)
	assert.True(t, sawDuration)
	require.Len(t, total.DataPoints, 1)

	dp := total.DataPoints[0]
	assert.Equal(t, int64(2), dp.Value)
	route, ok := dp.Attributes.Value(attribute.Key("http.route"))
	require.True(t, ok)
	assert.Equal(t, "/api/donations/:id", route.AsString())
	status, ok := dp.Attributes.Value(attribute.Key("http.status_code"))
	require.True(t, ok)
	assert.Equal(t, int64(http.StatusNotFound), status.AsInt64())
}
