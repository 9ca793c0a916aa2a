package middleware

import (
	"net/http"
	"sync/atomic"
)

// MetricsCollector counts requests, failed requests and requests in flight.
type MetricsCollector struct {
	requestCount *atomic.Int64
	errorCount   *atomic.Int64
	inFlight     atomic.Int64
}

func NewMetricsCollector(requestCount, errorCount *atomic.Int64) *MetricsCollector {
	return &MetricsCollector{
		requestCount: requestCount,
		errorCount:   errorCount,
	}
}

// InFlight returns the number of requests currently being served.
func (mc *MetricsCollector) InFlight() int64 {
	return mc.inFlight.Load()
}

// Middleware counts every request; 4xx and 5xx responses also count as errors.
func (mc *MetricsCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mc.requestCount.Add(1)
		mc.inFlight.Add(1)
		defer mc.inFlight.Add(-1)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		if rw.statusCode >= 400 {
			mc.errorCount.Add(1)
		}
	})
}
