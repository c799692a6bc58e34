package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

type observation struct {
	method string
	route  string
	status int
}

type recordingMetrics struct {
	observed []observation
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.observed = append(m.observed, observation{method: method, route: route, status: status})
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestAccessLog(t *testing.T) {
	log := &recordingLogger{}
	h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "GET /ok - status=200, bytes=2")
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "status=500")
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	metrics := &recordingMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(metrics))
	r.HandleFunc("/services/{serviceId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/services/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/services/43", nil))

	assert.Equal(t, []observation{
		{method: http.MethodGet, route: "/services/{serviceId}", status: http.StatusNotFound},
		{method: http.MethodGet, route: "/services/{serviceId}", status: http.StatusNotFound},
	}, metrics.observed)
}
