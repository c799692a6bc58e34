package middleware

import "time"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}
