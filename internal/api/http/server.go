package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	appApply "github.com/yetkin-kariyer/botfleet/internal/application/apply"
	appAuth "github.com/yetkin-kariyer/botfleet/internal/application/auth"
	appDispatch "github.com/yetkin-kariyer/botfleet/internal/application/dispatch"
	appOrchestrator "github.com/yetkin-kariyer/botfleet/internal/application/orchestrator"
	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/fleet"
	"github.com/yetkin-kariyer/botfleet/internal/domain/objective"
	domainUser "github.com/yetkin-kariyer/botfleet/internal/domain/user"
	"github.com/yetkin-kariyer/botfleet/internal/infrastructure/metrics"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	authSvc             *appAuth.Service
	dispatchSvc         *appDispatch.Service
	orchestrator        *appOrchestrator.Orchestrator
	applySvc            *appApply.Service
	fleetRepo           fleet.Repository
	collector           *metrics.Collector
	dispatchAPIKey      string
	sessionCookieName   string
	sessionCookieSecure bool
}

func NewServer(
	authSvc *appAuth.Service,
	dispatchSvc *appDispatch.Service,
	orchestrator *appOrchestrator.Orchestrator,
	applySvc *appApply.Service,
	fleetRepo fleet.Repository,
	collector *metrics.Collector,
	dispatchAPIKey string,
	sessionCookieName string,
	sessionCookieSecure bool,
) *Server {
	return &Server{
		authSvc:             authSvc,
		dispatchSvc:         dispatchSvc,
		orchestrator:        orchestrator,
		applySvc:            applySvc,
		fleetRepo:           fleetRepo,
		collector:           collector,
		dispatchAPIKey:      dispatchAPIKey,
		sessionCookieName:   sessionCookieName,
		sessionCookieSecure: sessionCookieSecure,
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	if s.collector != nil {
		r.Use(s.collector.InstrumentHandler)
	}

	if s.collector != nil {
		r.Method(http.MethodGet, "/metrics", s.collector.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.login)
			r.Post("/bootstrap", s.bootstrapAdmin)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/logout", s.logout)
				r.Get("/me", s.me)
			})
		})

		// Machine path: a single activity, keyed access.
		r.With(s.requireAPIKey).Post("/dispatch", s.dispatch)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Route("/fleet", func(r chi.Router) {
				r.With(s.requireRole(string(domainUser.RoleAdmin))).Post("/run", s.runFleet)
				r.With(s.requireRole(string(domainUser.RoleAdmin))).Post("/random-activity", s.runRandom)
				r.Get("/config", s.getFleetConfig)
				r.With(s.requireRole(string(domainUser.RoleAdmin))).Put("/config", s.updateFleetConfig)
			})

			r.Route("/objectives", func(r chi.Router) {
				r.With(s.requireRole(string(domainUser.RoleAdmin))).Post("/{objectiveId}/bulk-apply", s.bulkApply)
			})
		})
	})

	return r
}

// Helpers
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val := chi.URLParam(r, key)
	return uuid.Parse(val)
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// statusForError maps the rejection taxonomy onto HTTP statuses.
func statusForError(err error) (int, string) {
	var (
		hoursErr *activity.OutOfHoursError
		rateErr  *activity.RateLimitError
	)
	switch {
	case errors.Is(err, activity.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, activity.ErrActorNotFound):
		return http.StatusNotFound, "ACTOR_NOT_FOUND"
	case errors.Is(err, objective.ErrNotFound):
		return http.StatusNotFound, "OBJECTIVE_NOT_FOUND"
	case errors.Is(err, activity.ErrActorInactive):
		return http.StatusConflict, "ACTOR_INACTIVE"
	case errors.Is(err, activity.ErrSchedulerDisabled):
		return http.StatusConflict, "SCHEDULER_DISABLED"
	case errors.Is(err, activity.ErrRunInProgress):
		return http.StatusConflict, "RUN_IN_PROGRESS"
	case errors.Is(err, objective.ErrWindowClosed):
		return http.StatusConflict, "WINDOW_CLOSED"
	case errors.Is(err, objective.ErrCapacityFull):
		return http.StatusConflict, "CAPACITY_FULL"
	case errors.Is(err, activity.ErrKindNotEnabled):
		return http.StatusBadRequest, "KIND_NOT_ENABLED"
	case errors.Is(err, objective.ErrTeamSize):
		return http.StatusBadRequest, "INVALID_TEAM_SIZE"
	case errors.As(err, &hoursErr):
		return http.StatusBadRequest, "OUT_OF_HOURS"
	case errors.As(err, &rateErr):
		return http.StatusTooManyRequests, "RATE_LIMITED"
	case errors.Is(err, activity.ErrNotImplemented):
		return http.StatusNotImplemented, "NOT_IMPLEMENTED"
	case errors.Is(err, activity.ErrGenerator):
		return http.StatusBadGateway, "GENERATOR_FAILED"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
