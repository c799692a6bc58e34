package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware считает запросы по шаблону маршрута ("/api/v1/admin/services/{serviceId}"),
// чтобы ID не раздували кардинальность меток
func MetricsMiddleware(metrics HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			metrics.ObserveHTTPRequest(r.Method, routeTemplate(r), sw.Status(), time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tmpl
}
