package metrics_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ErlanBelekov/job-portal/internal/health"
	"github.com/ErlanBelekov/job-portal/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newProbeServer(t *testing.T, redisErr error) http.Handler {
	t.Helper()
	deps := map[string]health.Pinger{
		"redis": health.PingFunc(func(context.Context) error { return redisErr }),
	}
	checker := health.NewChecker(deps, slog.New(slog.NewTextHandler(io.Discard, nil)), prometheus.NewRegistry())
	return metrics.NewServer(":0", checker).Handler
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestProbes_AllUp(t *testing.T) {
	h := newProbeServer(t, nil)

	w := get(h, "/readyz")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"up","checks":{"redis":{"status":"up"}}}`, w.Body.String())

	w = get(h, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"up"}`, w.Body.String())
}

func TestProbes_DependencyDown(t *testing.T) {
	h := newProbeServer(t, errors.New("connection refused"))

	w := get(h, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.JSONEq(t, `{"status":"down","checks":{"redis":{"status":"down","error":"connection refused"}}}`, w.Body.String())

	// Liveness ignores dependencies.
	require.Equal(t, http.StatusOK, get(h, "/healthz").Code)
}

func TestRegister_ExposesPortalMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.Register(reg)

	metrics.PasswordResetsTotal.WithLabelValues("succeeded").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["jobportal_password_resets_total"])
}
