package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/imakhan79/Grocery-Mart/pkg/metrics"
)

// Metrics records request durations labeled by method and status.
func Metrics(apiMetrics *metrics.APIMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			apiMetrics.ObserveRequest(r.Method, strconv.Itoa(rec.status), time.Since(start))
		})
	}
}
