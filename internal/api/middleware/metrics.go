package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/V4U-MarketplaceService/pkg/metrics"
)

// statusRecorder запоминает код ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает HTTP метрики: счетчик запросов и гистограмму
// длительности. В качестве path используется шаблон маршрута mux, чтобы
// не раздувать кардинальность метрик значениями из URL.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			m.HTTPRequestsTotal.WithLabelValues(
				r.Method, path, strconv.Itoa(recorder.status),
			).Inc()
			m.HTTPRequestDuration.WithLabelValues(
				r.Method, path,
			).Observe(time.Since(start).Seconds())
		})
	}
}
