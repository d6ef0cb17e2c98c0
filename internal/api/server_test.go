package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"studiohub/internal/api"
	"studiohub/pkg/logger"
	"studiohub/pkg/metrics"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	httpMetrics, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	srv, err := api.NewServer(api.Deps{HTTPMetrics: httpMetrics, Gatherer: reg}, api.Options{MetricsPath: "/metrics"})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServer_Specs(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "openapi: 3.0.3")
	require.Contains(t, body, "/public/galleries/{code}")

	res, body = get(t, ts.URL+"/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "Studio Hub API")
}

func TestServer_UnauthenticatedAPIAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts.URL+"/v1/galleries")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"authentication required"}`, body)

	res, body = get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.True(t, strings.Contains(body, `http_requests_total{method="GET",route="/v1/galleries",status="401"} 1`), body)
}

func TestServer_CORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/v1/galleries", nil) //nolint: noctx
	require.NoError(t, err)
	req.Header.Set("Origin", "https://acme.studiohub.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_PprofIsOptIn(t *testing.T) {
	ts := newTestServer(t)
	res, _ := get(t, ts.URL+"/debug/pprof/")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	srv, err := api.NewServer(api.Deps{Gatherer: prometheus.NewRegistry()}, api.Options{Pprof: true})
	require.NoError(t, err)
	withPprof := httptest.NewServer(srv.Handler)
	defer withPprof.Close()

	res, _ = get(t, withPprof.URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}
