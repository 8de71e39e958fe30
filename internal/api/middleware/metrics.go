package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/labims/LIMS-BookingService/pkg/metrics"
)

// statusRecorder перехватывает статус код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает метрики HTTP запросов: счетчик, длительность
// и число запросов в обработке. Путь берется из шаблона роута mux, чтобы
// не плодить кардинальность метрик на ID в путях
func MetricsMiddleware(collector *metrics.Metrics, _ string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			collector.IncHTTPInFlight()
			defer collector.DecHTTPInFlight()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			collector.ObserveHTTPRequest(
				r.Method,
				path,
				recorder.status,
				time.Since(start),
			)
		})
	}
}
