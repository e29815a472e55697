package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// HTTPMetrics интерфейс сборщика HTTP метрик
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path, status string, duration time.Duration)
	HTTPInFlightInc()
	HTTPInFlightDec()
}

// statusRecorder запоминает статус, записанный обработчиком
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics собирает метрики по каждому HTTP запросу.
// В качестве лейбла пути используется шаблон маршрута gorilla/mux,
// а не сырой URL, чтобы не раздувать кардинальность
func Metrics(m HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			m.HTTPInFlightInc()
			defer m.HTTPInFlightDec()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			m.ObserveHTTPRequest(r.Method, path, strconv.Itoa(recorder.status), time.Since(start))
		})
	}
}
