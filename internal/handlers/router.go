package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the handler set into a chi router together with the
// Prometheus endpoint for the given registry.
func (h *Handler) NewRouter(reg *prometheus.Registry) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/", h.instrument("welcome", h.Welcome))
	router.Post("/addSchool", h.instrument("add_school", h.AddSchool))
	router.Get("/listSchools", h.instrument("list_schools", h.ListSchools))
	router.Get("/resolveAddress", h.instrument("resolve_address", h.ResolveAddress))
	router.Get("/healthz", h.Healthz)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return router
}

// statusRecorder captures the status code written by a handler so it can be
// attached as a metric label.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// instrument records request count and duration for a named handler.
func (h *Handler) instrument(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next(recorder, r)

		h.metrics.RequestSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
		h.metrics.RequestsTotal.WithLabelValues(name, strconv.Itoa(recorder.status)).Inc()
	}
}
