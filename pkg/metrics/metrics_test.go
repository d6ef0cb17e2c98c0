package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"studiohub/pkg/metrics"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestHTTPMiddleware_RecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/public/galleries/:code", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/v1/public/galleries/AAAA1111", "/v1/public/galleries/BBBB2222", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(reg, "http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 2, count, "one series for the gallery route and one for unmatched")
}

func TestHTTP_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewHTTP(reg)
	require.NoError(t, err)
	_, err = metrics.NewHTTP(reg)
	require.Error(t, err)
}

func TestDomainCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	d, err := metrics.NewDomain(mp)
	require.NoError(t, err)

	ctx := context.Background()
	d.GalleryCreated(ctx)
	d.OrderPlaced(ctx, "usd", 2000)
	d.OrderPlaced(ctx, "usd", 500)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			data, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range data.DataPoints {
				sums[m.Name] += dp.Value
			}
		}
	}
	require.EqualValues(t, 1, sums["galleries_created"])
	require.EqualValues(t, 2, sums["orders_placed"])
	require.EqualValues(t, 2500, sums["order_revenue_minor"])
}

func TestNoopDomain(t *testing.T) {
	d := metrics.NoopDomain()
	require.NotPanics(t, func() {
		d.PaymentConfirmed(context.Background())
		d.GalleryEvent(context.Background(), "published")
	})
}

func TestMeterProviderExportsToPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)

	d, err := metrics.NewDomain(mp)
	require.NoError(t, err)
	d.PhotoUploaded(context.Background())

	count, err := testutil.GatherAndCount(reg, "photos_uploaded_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
