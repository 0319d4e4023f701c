package middleware

import (
	"net/http"
	"strconv"
	"time"

	"nutrition-booking/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// statusRecorder captures the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type ObservabilityMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.Metrics
}

func NewObservabilityMiddleware(log *logrus.Logger, m *metrics.Metrics) *ObservabilityMiddleware {
	return &ObservabilityMiddleware{
		log:     log,
		metrics: m,
	}
}

// Handle records latency per route template and logs each request.
// It must be installed with Router.Use so the matched route is known.
func (m *ObservabilityMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		elapsed := time.Since(start)

		m.metrics.ObserveHTTP(r.Method, route, strconv.Itoa(rec.status), elapsed.Seconds())
		m.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"route":      route,
			"path":       r.URL.Path,
			"status":     rec.status,
			"latency_ms": elapsed.Milliseconds(),
		}).Debug("HTTP request")
	})
}
