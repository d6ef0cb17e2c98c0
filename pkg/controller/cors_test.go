package controller_test

import (
	"net/http"
	"net/http/httptest"
	"studiohub/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		method     string
		wantCalled bool
		wantStatus int
	}{
		{method: http.MethodOptions, wantCalled: false, wantStatus: http.StatusNoContent},
		{method: http.MethodGet, wantCalled: true, wantStatus: http.StatusTeapot},
		{method: http.MethodPatch, wantCalled: true, wantStatus: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/v1/public/galleries/ACME1234", nil)
			req.Header.Set("Origin", "https://photos.acme.test")
			controller.WithCORS(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantCalled, called)
			require.Equal(t, tt.wantStatus, rec.Code)

			h := rec.Header()
			require.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
			require.Contains(t, h.Get("Access-Control-Allow-Headers"), "Authorization")
			require.Contains(t, h.Get("Access-Control-Allow-Headers"), "X-Session-Id")
			require.Contains(t, h.Get("Access-Control-Allow-Methods"), "PATCH")
			require.Contains(t, h.Get("Access-Control-Allow-Methods"), "DELETE")
			require.Contains(t, h.Get("Access-Control-Expose-Headers"), "Retry-After")
		})
	}
}
