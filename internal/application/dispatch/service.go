// Package dispatch runs the full check chain for a single activity request:
// actor lookup, fleet switch, kind switch, hour gate, rate limit, and
// finally execution.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yetkin-kariyer/botfleet/internal/application/executor"
	"github.com/yetkin-kariyer/botfleet/internal/application/schedule"
	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
	"github.com/yetkin-kariyer/botfleet/internal/domain/fleet"
)

// Service dispatches single activities through the gate chain.
type Service struct {
	actors  actor.Repository
	fleet   fleet.Repository
	limiter *schedule.Limiter
	exec    *executor.Service
	logger  zerolog.Logger
}

// NewService creates a dispatcher.
func NewService(
	actors actor.Repository,
	fleetRepo fleet.Repository,
	limiter *schedule.Limiter,
	exec *executor.Service,
	logger zerolog.Logger,
) *Service {
	return &Service{
		actors:  actors,
		fleet:   fleetRepo,
		limiter: limiter,
		exec:    exec,
		logger:  logger.With().Str("service", "dispatch").Logger(),
	}
}

// Input is one dispatch request.
type Input struct {
	ActorID uuid.UUID
	Kind    activity.Kind
	// SkipHourCheck bypasses the hour gate. Used by manually triggered
	// runs.
	SkipHourCheck bool
}

// FleetConfig loads the stored fleet config, falling back to defaults when
// none has been written yet.
func (s *Service) FleetConfig(ctx context.Context) (*fleet.Config, error) {
	cfg, err := s.fleet.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fleet config: %w", err)
	}
	if cfg == nil {
		cfg = fleet.Default()
	}
	return cfg, nil
}

// Dispatch runs the chain and executes the activity when every gate passes.
// The checks run in a fixed order so a caller always gets the most
// fundamental refusal first.
func (s *Service) Dispatch(ctx context.Context, in Input) (*activity.Result, error) {
	if !in.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", activity.ErrKindNotEnabled, in.Kind)
	}

	a, err := s.actors.GetByID(ctx, in.ActorID)
	if err != nil {
		return nil, fmt.Errorf("load actor: %w", err)
	}
	if a == nil {
		return nil, activity.ErrActorNotFound
	}
	if a.Config == nil || !a.Config.IsActive {
		return nil, activity.ErrActorInactive
	}

	cfg, err := s.FleetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.ScheduleEnabled {
		return nil, activity.ErrSchedulerDisabled
	}
	if !cfg.KindEnabled(in.Kind) || !actorKindEnabled(a.Config, in.Kind) {
		return nil, fmt.Errorf("%w: %s", activity.ErrKindNotEnabled, in.Kind)
	}

	now := time.Now().UTC()
	if !in.SkipHourCheck {
		if !schedule.IsActiveHour(a.Config.ActiveHours, cfg.ActiveHours, now.Hour()) {
			return nil, &activity.OutOfHoursError{
				Hour:        now.Hour(),
				ActiveHours: schedule.ActiveHours(a.Config.ActiveHours, cfg.ActiveHours),
			}
		}
	}

	_, actorMax := a.Config.Bounds(in.Kind)
	if err := s.limiter.Allow(ctx, a.ActorID, in.Kind, schedule.CeilingFor(cfg, actorMax, in.Kind), now); err != nil {
		return nil, err
	}

	result, err := s.exec.Execute(ctx, a, in.Kind)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("actor_id", a.ActorID.String()).
		Str("kind", string(in.Kind)).
		Int("count", result.Count).
		Msg("activity dispatched")
	return result, nil
}

func actorKindEnabled(cfg *actor.Configuration, kind activity.Kind) bool {
	if len(cfg.EnabledKinds) == 0 {
		return true
	}
	for _, k := range cfg.EnabledKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Reason labels a dispatch outcome for logs and metrics.
func Reason(err error) string {
	var (
		hoursErr *activity.OutOfHoursError
		rateErr  *activity.RateLimitError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, activity.ErrActorNotFound):
		return "actor_not_found"
	case errors.Is(err, activity.ErrActorInactive):
		return "actor_inactive"
	case errors.Is(err, activity.ErrSchedulerDisabled):
		return "scheduler_disabled"
	case errors.Is(err, activity.ErrKindNotEnabled):
		return "kind_not_enabled"
	case errors.Is(err, activity.ErrNotImplemented):
		return "not_implemented"
	case errors.Is(err, activity.ErrGenerator):
		return "generator_failed"
	case errors.As(err, &hoursErr):
		return "out_of_hours"
	case errors.As(err, &rateErr):
		return "rate_limited"
	default:
		return "error"
	}
}
