package middleware

import (
	"net/http"
	"time"
)

// AccessLog пишет одну строку на запрос; ответы 5xx логируются как Warn
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			status := sw.Status()
			format := "HTTP %s %s - status=%d, bytes=%d, duration_ms=%d, request_id=%s"
			args := []interface{}{
				r.Method, r.URL.Path, status, sw.bytes,
				time.Since(start).Milliseconds(), RequestIDFromContext(r.Context()),
			}

			if status >= http.StatusInternalServerError {
				logger.Warn(format, args...)
				return
			}
			logger.Info(format, args...)
		})
	}
}
