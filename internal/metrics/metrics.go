package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry: только метрики приложения, без стандартных go/process коллекторов.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ychet",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ychet",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ychet",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // от 5мс до ~5с
		},
		[]string{"method", "path"},
	)

	recordsChanged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ychet",
			Name:      "records_changed_total",
			Help:      "Successful create/update/delete operations per entity.",
		},
		[]string{"entity", "action"},
	)
)

func init() {
	Registry.MustRegister(httpInFlight, httpRequests, httpDuration, recordsChanged)
}

// Handler отдаёт реестр в текстовом формате Prometheus.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func InFlightInc() { httpInFlight.Inc() }
func InFlightDec() { httpInFlight.Dec() }

// ObserveHTTP учитывает завершённый запрос. path это шаблон маршрута, а не сырой URL.
func ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RecordChange считает успешное изменение, например RecordChange("client", "delete").
func RecordChange(entity, action string) {
	recordsChanged.WithLabelValues(entity, action).Inc()
}
