package controller_test

import (
	"net/http"
	"net/http/httptest"
	"studiohub/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"", "cmdline", "heap?debug=1", "goroutine?debug=1"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.PprofPrefix+path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, rec.Header().Get("Content-Type"))
		})
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.PprofPrefix+"galleries", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
