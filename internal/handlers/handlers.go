// Package handlers implements the HTTP surface of the school proximity service.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/UnknownOlympus/compass/internal/geo"
	"github.com/UnknownOlympus/compass/internal/geocoding"
	"github.com/UnknownOlympus/compass/internal/metrics"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/UnknownOlympus/compass/internal/repository"
	"github.com/UnknownOlympus/compass/internal/validation"
)

// Pinger is the connectivity probe used by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler carries the dependencies shared by all request handlers.
type Handler struct {
	log      *slog.Logger         // Logger for handler activities
	repo     repository.Interface // Interface for data repository access
	geocoder geocoding.Provider   // Provider for the address-resolution endpoint
	metrics  *metrics.Metrics     // Metrics for tracking request outcomes
	pinger   Pinger               // Database connectivity probe for health checks
	devMode  bool                 // Whether 500 responses may carry error detail
}

// NewHandler creates a Handler with the given dependencies. devMode controls
// whether server error responses include the underlying error text; it must be
// false in production.
func NewHandler(
	log *slog.Logger,
	repo repository.Interface,
	geocoder geocoding.Provider,
	appMetrics *metrics.Metrics,
	pinger Pinger,
	devMode bool,
) *Handler {
	return &Handler{
		log:      log,
		repo:     repo,
		geocoder: geocoder,
		metrics:  appMetrics,
		pinger:   pinger,
		devMode:  devMode,
	}
}

type addSchoolResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	SchoolID int    `json:"schoolId"`
}

type listSchoolsResponse struct {
	Success bool                    `json:"success"`
	Count   int                     `json:"count"`
	Schools []models.SchoolDistance `json:"schools"`
}

type resolveAddressResponse struct {
	Success   bool    `json:"success"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type errorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func (h *Handler) respond(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.ErrorContext(ctx, "Failed to write response", "error", err)
	}
}

// serverError reports an infrastructure failure as an opaque 500. The
// underlying error is logged server-side and leaks into the response body only
// in development mode.
func (h *Handler) serverError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.log.ErrorContext(ctx, msg, "error", err)

	resp := errorResponse{Success: false, Message: "Internal server error"}
	if h.devMode {
		resp.Error = err.Error()
	}
	h.respond(ctx, w, http.StatusInternalServerError, resp)
}

// AddSchool registers a new school. The body is validated against the full rule
// set before any persistence attempt; a validation failure reports every
// violated rule at once and writes nothing.
func (h *Handler) AddSchool(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload validation.SchoolPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.metrics.ValidationFailures.Inc()
		h.respond(ctx, w, http.StatusBadRequest, errorResponse{
			Success: false,
			Errors:  []string{"request body must be a valid JSON object"},
		})
		return
	}

	school, errs := validation.ValidateSchool(payload)
	if len(errs) > 0 {
		h.metrics.ValidationFailures.Inc()
		h.respond(ctx, w, http.StatusBadRequest, errorResponse{Success: false, Errors: errs})
		return
	}

	id, err := h.repo.InsertSchool(ctx, school)
	if err != nil {
		h.serverError(ctx, w, "Failed to insert school", err)
		return
	}

	h.metrics.SchoolsRegistered.Inc()
	h.respond(ctx, w, http.StatusCreated, addSchoolResponse{
		Success:  true,
		Message:  "School added successfully",
		SchoolID: id,
	})
}

// ListSchools returns every registered school annotated with its distance from
// the caller-supplied point, sorted ascending. The query is validated before
// the repository is touched.
func (h *Handler) ListSchools(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	origin, ok := validation.ValidateQuery(
		r.URL.Query().Get("latitude"),
		r.URL.Query().Get("longitude"),
	)
	if !ok {
		h.metrics.ValidationFailures.Inc()
		h.respond(ctx, w, http.StatusBadRequest, errorResponse{
			Success: false,
			Message: "valid latitude and longitude query parameters are required",
		})
		return
	}

	schools, err := h.repo.ListSchools(ctx)
	if err != nil {
		h.serverError(ctx, w, "Failed to list schools", err)
		return
	}

	annotated := geo.Annotate(origin, schools)
	geo.SortByDistance(annotated)

	h.respond(ctx, w, http.StatusOK, listSchoolsResponse{
		Success: true,
		Count:   len(annotated),
		Schools: annotated,
	})
}

// ResolveAddress forward-geocodes an address so clients can fill in the
// coordinates of a school they are about to register.
func (h *Handler) ResolveAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		h.metrics.ValidationFailures.Inc()
		h.respond(ctx, w, http.StatusBadRequest, errorResponse{
			Success: false,
			Message: "address query parameter is required",
		})
		return
	}

	coords, err := h.geocoder.Geocode(ctx, address)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to resolve address", "address", address, "error", err)

		resp := errorResponse{Success: false, Message: "failed to resolve address"}
		if h.devMode {
			resp.Error = err.Error()
		}
		h.respond(ctx, w, http.StatusBadGateway, resp)
		return
	}

	h.respond(ctx, w, http.StatusOK, resolveAddressResponse{
		Success:   true,
		Address:   address,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	})
}

// Welcome serves the informational root payload. No side effects.
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	h.respond(r.Context(), w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Compass school proximity API",
		"endpoints": map[string]string{
			"POST /addSchool":     "register a school with its coordinates",
			"GET /listSchools":    "list schools sorted by distance from ?latitude=&longitude=",
			"GET /resolveAddress": "resolve ?address= to coordinates",
			"GET /healthz":        "health check",
			"GET /metrics":        "prometheus metrics",
		},
	})
}

// Healthz reports liveness of the service and its database connection.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status, body := http.StatusOK, "OK"
	if err := h.pinger.Ping(ctx); err != nil {
		h.log.ErrorContext(ctx, "DB ping failed", "error", err)
		status, body = http.StatusServiceUnavailable, "DB ping failed"
	}

	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		h.log.ErrorContext(ctx, "failed to write reply", "error", err)
	}
}
