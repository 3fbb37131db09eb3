// Package orchestrator runs batch activity passes over the whole fleet. One
// invocation walks every active actor, plans quantities from the actor's
// bounds and current usage, and executes through the shared executor. A
// failing actor never aborts the run.
package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yetkin-kariyer/botfleet/internal/application/chance"
	"github.com/yetkin-kariyer/botfleet/internal/application/executor"
	"github.com/yetkin-kariyer/botfleet/internal/application/schedule"
	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
	"github.com/yetkin-kariyer/botfleet/internal/domain/fleet"
)

// Probabilities of the optional batch actions.
const (
	communityJoinChance = 0.3
	postCreateChance    = 0.5
	badgeShareChance    = 0.1
)

// Orchestrator coordinates fleet-wide batch runs.
type Orchestrator struct {
	actors  actor.Repository
	fleet   fleet.Repository
	limiter *schedule.Limiter
	exec    *executor.Service
	pick    chance.Chooser
	logger  zerolog.Logger

	// Guards against overlapping runs within this process.
	running sync.Mutex
}

// NewOrchestrator creates a batch orchestrator.
func NewOrchestrator(
	actors actor.Repository,
	fleetRepo fleet.Repository,
	limiter *schedule.Limiter,
	exec *executor.Service,
	pick chance.Chooser,
	logger zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		actors:  actors,
		fleet:   fleetRepo,
		limiter: limiter,
		exec:    exec,
		pick:    pick,
		logger:  logger.With().Str("service", "orchestrator").Logger(),
	}
}

// RunOptions tune one batch invocation.
type RunOptions struct {
	// SkipHourCheck processes every actor regardless of its hour window.
	SkipHourCheck bool
}

// ActorReport is the outcome for a single actor within a run.
type ActorReport struct {
	ActorID    uuid.UUID         `json:"actorId"`
	Name       string            `json:"name"`
	Skipped    bool              `json:"skipped,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
	Activities []activity.Result `json:"activities"`
}

// Report summarizes a whole run.
type Report struct {
	Processed  int           `json:"processed"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Skipped    int           `json:"skipped"`
	Results    []ActorReport `json:"results"`
	Timestamp  time.Time     `json:"timestamp"`
}

func (r *Report) add(ar ActorReport) {
	r.Processed++
	switch {
	case ar.Skipped:
		r.Skipped++
	case ar.Success:
		r.Successful++
	default:
		r.Failed++
	}
	r.Results = append(r.Results, ar)
}

// Run executes one batch pass over all active actors. Only one run may be in
// flight per process; a second caller gets activity.ErrRunInProgress.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) (*Report, error) {
	if !o.running.TryLock() {
		return nil, activity.ErrRunInProgress
	}
	defer o.running.Unlock()

	cfg, err := o.fleet.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fleet config: %w", err)
	}
	if cfg == nil {
		cfg = fleet.Default()
	}

	actors, err := o.actors.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active actors: %w", err)
	}

	report := &Report{Timestamp: time.Now().UTC()}
	now := time.Now().UTC()
	for _, a := range actors {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.add(o.processActor(ctx, a, cfg, now, opts))
	}

	o.logger.Info().
		Int("processed", report.Processed).
		Int("successful", report.Successful).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("batch run finished")
	return report, nil
}

func (o *Orchestrator) processActor(ctx context.Context, a *actor.Actor, cfg *fleet.Config, now time.Time, opts RunOptions) ActorReport {
	ar := ActorReport{ActorID: a.ActorID, Name: a.Name}
	if a.Config == nil {
		ar.Skipped = true
		ar.Reason = "no configuration"
		return ar
	}
	if !opts.SkipHourCheck && !schedule.IsActiveHour(a.Config.ActiveHours, cfg.ActiveHours, now.Hour()) {
		ar.Skipped = true
		ar.Reason = "not in active hours"
		return ar
	}

	counts, err := o.limiter.Snapshot(ctx, a.ActorID, now)
	if err != nil {
		ar.Error = err.Error()
		return ar
	}

	// Occasionally join a community before the regular activities.
	if o.pick.Chance(communityJoinChance) {
		if result, err := o.exec.JoinCommunity(ctx, a); err != nil {
			o.logger.Warn().Err(err).Str("actor_id", a.ActorID.String()).Msg("community join failed")
		} else if result != nil {
			ar.Activities = append(ar.Activities, *result)
		}
	}

	for _, kind := range activity.ImplementedKinds() {
		if !cfg.KindEnabled(kind) {
			continue
		}
		needed := o.plannedQuantity(a.Config, cfg, kind, counts[kind])
		for i := 0; i < needed; i++ {
			result, err := o.exec.Execute(ctx, a, kind)
			if err != nil {
				// One failed attempt never ends the actor's turn; the
				// remaining kinds still get their shot.
				o.logger.Warn().Err(err).
					Str("actor_id", a.ActorID.String()).
					Str("kind", string(kind)).
					Msg("batch activity failed")
				ar.Activities = append(ar.Activities, activity.Result{
					Kind: kind, Success: false, Detail: err.Error(),
				})
				break
			}
			ar.Activities = append(ar.Activities, *result)
			if result.Count == 0 {
				// Nothing left to act on for this kind.
				break
			}
		}
	}

	// Occasionally share freshly earned badges as posts.
	if o.pick.Chance(badgeShareChance) {
		if shared, err := o.exec.ShareBadges(ctx, a); err != nil {
			o.logger.Warn().Err(err).Str("actor_id", a.ActorID.String()).Msg("badge share failed")
		} else if shared > 0 {
			ar.Activities = append(ar.Activities, activity.Result{
				Kind: activity.KindPost, Success: true, Count: shared, Detail: "badge share",
			})
		}
	}

	ar.Success = true
	return ar
}

// plannedQuantity decides how many activities of a kind the actor performs
// this run. Nothing happens once the minimum is met; below it, the quantity
// is random within the configured band but never exceeds the remaining
// headroom. Posts are singular and only created half the time.
func (o *Orchestrator) plannedQuantity(cfg *actor.Configuration, fc *fleet.Config, kind activity.Kind, count int) int {
	min, max := cfg.Bounds(kind)
	if max <= 0 {
		max = fc.Ceiling(kind)
	}
	if count >= min || max <= count {
		return 0
	}
	if kind == activity.KindPost {
		if o.pick.Chance(postCreateChance) {
			return 1
		}
		return 0
	}
	quantity := 1
	if span := max - min; span > 0 {
		quantity = o.pick.IntN(span) + 1
	}
	if remaining := max - count; quantity > remaining {
		quantity = remaining
	}
	return quantity
}

// RunRandom has count randomly chosen active actors each perform one random
// activity, ignoring hour windows and minimum bands. Used from the admin
// surface to make the feed look alive on demand.
func (o *Orchestrator) RunRandom(ctx context.Context, count int) (*Report, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive")
	}
	if !o.running.TryLock() {
		return nil, activity.ErrRunInProgress
	}
	defer o.running.Unlock()

	actors, err := o.actors.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active actors: %w", err)
	}
	if len(actors) == 0 {
		return nil, activity.ErrActorNotFound
	}

	o.shuffle(actors)
	if count > len(actors) {
		count = len(actors)
	}

	kinds := activity.ImplementedKinds()
	report := &Report{Timestamp: time.Now().UTC()}
	for _, a := range actors[:count] {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		ar := ActorReport{ActorID: a.ActorID, Name: a.Name}
		if a.Config == nil {
			ar.Skipped = true
			ar.Reason = "no configuration"
			report.add(ar)
			continue
		}
		kind := kinds[o.pick.IntN(len(kinds))]
		result, err := o.exec.Execute(ctx, a, kind)
		if err != nil {
			ar.Error = err.Error()
			report.add(ar)
			continue
		}
		ar.Success = true
		ar.Activities = append(ar.Activities, *result)
		report.add(ar)
	}
	return report, nil
}

func (o *Orchestrator) shuffle(actors []*actor.Actor) {
	for i := len(actors) - 1; i > 0; i-- {
		j := o.pick.IntN(i + 1)
		actors[i], actors[j] = actors[j], actors[i]
	}
}
