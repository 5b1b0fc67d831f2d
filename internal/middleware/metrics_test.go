package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/RupeshSangoju/new-rephrase/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	t.Run("increments counter on 200", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		handler := Metrics(inner)

		before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/health", "200"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		after := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/health", "200"))
		assert.Equal(t, before+1, after)
	})

	t.Run("unknown paths share a label", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		handler := Metrics(inner)

		before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "other", "404"))

		for _, p := range []string{"/missing", "/wp-admin"} {
			req := httptest.NewRequest(http.MethodGet, p, nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}

		after := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "other", "404"))
		assert.Equal(t, before+2, after)
	})
}
