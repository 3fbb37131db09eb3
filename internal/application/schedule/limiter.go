package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/content"
	"github.com/yetkin-kariyer/botfleet/internal/domain/fleet"
)

// Limiter enforces per-actor rolling-window ceilings by counting the domain
// records themselves. A count failure blocks the activity; the limiter never
// guesses.
type Limiter struct {
	counter content.Counter
	logger  zerolog.Logger
}

// NewLimiter creates a rate limiter over the given counter.
func NewLimiter(counter content.Counter, logger zerolog.Logger) *Limiter {
	return &Limiter{
		counter: counter,
		logger:  logger.With().Str("service", "limiter").Logger(),
	}
}

// Count returns the actor's record count in the kind's current window. Kinds
// without a window always count zero.
func (l *Limiter) Count(ctx context.Context, actorID uuid.UUID, kind activity.Kind, now time.Time) (int, error) {
	from, to, ok := WindowFor(kind, now)
	if !ok {
		return 0, nil
	}
	n, err := l.counter.CountInWindow(ctx, actorID, kind, from, to)
	if err != nil {
		return 0, fmt.Errorf("count %s in window: %w", kind, err)
	}
	return n, nil
}

// Allow returns nil when the actor is under the ceiling for the kind, and a
// *activity.RateLimitError when the ceiling is reached. A ceiling of zero
// blocks the kind outright.
func (l *Limiter) Allow(ctx context.Context, actorID uuid.UUID, kind activity.Kind, ceiling int, now time.Time) error {
	if kind.Window() == activity.WindowNone {
		return nil
	}
	n, err := l.Count(ctx, actorID, kind, now)
	if err != nil {
		return err
	}
	if n >= ceiling {
		l.logger.Debug().
			Str("actor_id", actorID.String()).
			Str("kind", string(kind)).
			Int("count", n).
			Int("ceiling", ceiling).
			Msg("rate limit reached")
		return &activity.RateLimitError{Kind: kind, Window: kind.Window(), Count: n, Ceiling: ceiling}
	}
	return nil
}

// Remaining returns ceiling minus the actor's count in the kind's current
// window. Zero or negative means the quota is exhausted.
func (l *Limiter) Remaining(ctx context.Context, actorID uuid.UUID, kind activity.Kind, ceiling int, now time.Time) (int, error) {
	n, err := l.Count(ctx, actorID, kind, now)
	if err != nil {
		return 0, err
	}
	return ceiling - n, nil
}

// Snapshot counts the actor's current usage for every windowed kind. The
// orchestrator reads it once per actor and plans quantities from the frozen
// numbers.
func (l *Limiter) Snapshot(ctx context.Context, actorID uuid.UUID, now time.Time) (map[activity.Kind]int, error) {
	counts := make(map[activity.Kind]int)
	for _, kind := range activity.Kinds() {
		if kind.Window() == activity.WindowNone {
			continue
		}
		n, err := l.Count(ctx, actorID, kind, now)
		if err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	return counts, nil
}

// CeilingFor resolves the effective ceiling for a kind: the actor's own max
// when configured, else the fleet ceiling.
func CeilingFor(cfg *fleet.Config, actorMax int, kind activity.Kind) int {
	if actorMax > 0 {
		return actorMax
	}
	return cfg.Ceiling(kind)
}
