package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes Prometheus metrics for the scheduler: dispatch outcomes
// by kind and reason, batch run totals, and inbound HTTP requests.
type Collector struct {
	registry        *prometheus.Registry
	dispatchTotal   *prometheus.CounterVec
	runTotal        *prometheus.CounterVec
	runActors       *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

// NewCollector constructs a collector with its own registry.
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	dispatchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "botfleet",
		Subsystem: "dispatch",
		Name:      "total",
		Help:      "Dispatch attempts by activity kind and outcome reason.",
	}, []string{"kind", "reason"})

	runTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "botfleet",
		Subsystem: "run",
		Name:      "total",
		Help:      "Batch runs by trigger and outcome.",
	}, []string{"trigger", "outcome"})

	runActors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "botfleet",
		Subsystem: "run",
		Name:      "actors_total",
		Help:      "Actors handled across batch runs by result bucket.",
	}, []string{"result"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "botfleet",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution for inbound HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "botfleet",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of inbound HTTP requests.",
	}, []string{"method", "path", "status"})

	for _, c := range []prometheus.Collector{dispatchTotal, runTotal, runActors, requestDuration, requestTotal} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return &Collector{
		registry:        registry,
		dispatchTotal:   dispatchTotal,
		runTotal:        runTotal,
		runActors:       runActors,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

// ObserveDispatch records one dispatch attempt.
func (c *Collector) ObserveDispatch(kind, reason string) {
	c.dispatchTotal.WithLabelValues(kind, reason).Inc()
}

// ObserveRun records the outcome of one batch run and its actor buckets.
func (c *Collector) ObserveRun(trigger, outcome string, successful, failed, skipped int) {
	c.runTotal.WithLabelValues(trigger, outcome).Inc()
	c.runActors.WithLabelValues("successful").Add(float64(successful))
	c.runActors.WithLabelValues("failed").Add(float64(failed))
	c.runActors.WithLabelValues("skipped").Add(float64(skipped))
}

// Handler returns an HTTP handler for exposing Prometheus metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler to record HTTP metrics.
func (c *Collector) InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.status)
		path := r.URL.Path

		c.requestTotal.WithLabelValues(r.Method, path, status).Inc()
		c.requestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
