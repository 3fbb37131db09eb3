// Package apply implements bulk objective applications: a set of actors is
// applied to an objective either one by one (solo) or as formed teams.
package apply

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yetkin-kariyer/botfleet/internal/application/teamform"
	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
	"github.com/yetkin-kariyer/botfleet/internal/domain/objective"
	"github.com/yetkin-kariyer/botfleet/internal/generator"
)

// Mode selects between individual and team applications.
type Mode string

const (
	ModeSolo Mode = "solo"
	ModeTeam Mode = "team"
)

// Service runs bulk applications.
type Service struct {
	actors     actor.Repository
	objectives objective.Repository
	teams      *teamform.Service
	gen        generator.Generator
	logger     zerolog.Logger
}

// NewService creates a bulk application service.
func NewService(
	actors actor.Repository,
	objectives objective.Repository,
	teams *teamform.Service,
	gen generator.Generator,
	logger zerolog.Logger,
) *Service {
	return &Service{
		actors:     actors,
		objectives: objectives,
		teams:      teams,
		gen:        gen,
		logger:     logger.With().Str("service", "apply").Logger(),
	}
}

// Input is one bulk application request.
type Input struct {
	ObjectiveID uuid.UUID
	ActorIDs    []uuid.UUID
	Mode        Mode
	// TeamSize is required in team mode.
	TeamSize int
	// Filter optionally narrows the candidate set, see MatchFilter.
	Filter string
	// MergeRemainderBelow, see teamform.Options.
	MergeRemainderBelow int
}

// Report summarizes a bulk application.
type Report struct {
	Total        int      `json:"total"`
	Successful   int      `json:"successful"`
	Failed       int      `json:"failed"`
	TeamsCreated int      `json:"teamsCreated"`
	Errors       []string `json:"errors,omitempty"`
}

// BulkApply validates the objective, filters candidates, and creates one
// application per actor (solo) or per team member (team). Actors that
// already applied are skipped idempotently and counted under failed.
func (s *Service) BulkApply(ctx context.Context, in Input) (*Report, error) {
	obj, err := s.objectives.GetByID(ctx, in.ObjectiveID)
	if err != nil {
		return nil, fmt.Errorf("load objective: %w", err)
	}
	if obj == nil {
		return nil, objective.ErrNotFound
	}
	now := time.Now().UTC()
	if !obj.AcceptingAt(now) {
		return nil, objective.ErrWindowClosed
	}
	existing, err := s.objectives.CountApplications(ctx, in.ObjectiveID)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	if obj.Capacity > 0 && existing >= obj.Capacity {
		return nil, objective.ErrCapacityFull
	}
	if in.Mode == ModeTeam {
		if in.TeamSize < obj.MinTeamSize || (obj.MaxTeamSize > 0 && in.TeamSize > obj.MaxTeamSize) {
			return nil, fmt.Errorf("%w: size %d, bounds [%d, %d]", objective.ErrTeamSize, in.TeamSize, obj.MinTeamSize, obj.MaxTeamSize)
		}
	}

	appliedIDs, err := s.objectives.ListAppliedActorIDs(ctx, in.ObjectiveID)
	if err != nil {
		return nil, fmt.Errorf("list applied actors: %w", err)
	}
	applied := make(map[uuid.UUID]struct{}, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = struct{}{}
	}

	actors, err := s.actors.ListByIDs(ctx, in.ActorIDs)
	if err != nil {
		return nil, fmt.Errorf("load actors: %w", err)
	}
	byID := make(map[uuid.UUID]*actor.Actor, len(actors))
	for _, a := range actors {
		byID[a.ActorID] = a
	}

	report := &Report{Total: len(in.ActorIDs)}
	var candidates []*actor.Actor
	for _, id := range in.ActorIDs {
		a, ok := byID[id]
		if !ok {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("actor %s not found", id))
			continue
		}
		if _, dup := applied[id]; dup {
			// Idempotent skip: already applied, never re-processed.
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("actor %s already applied", id))
			continue
		}
		match, err := MatchFilter(in.Filter, a)
		if err != nil {
			return nil, fmt.Errorf("candidate filter: %w", err)
		}
		if !match {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("actor %s excluded by filter", id))
			continue
		}
		candidates = append(candidates, a)
	}

	switch in.Mode {
	case ModeTeam:
		err = s.applyTeams(ctx, obj, candidates, in, report)
	default:
		err = s.applySolo(ctx, obj, candidates, report)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("objective_id", in.ObjectiveID.String()).
		Str("mode", string(in.Mode)).
		Int("successful", report.Successful).
		Int("failed", report.Failed).
		Int("teams", report.TeamsCreated).
		Msg("bulk application finished")
	return report, nil
}

func (s *Service) applySolo(ctx context.Context, obj *objective.Objective, candidates []*actor.Actor, report *Report) error {
	for _, a := range candidates {
		if err := s.createApplication(ctx, obj, a, nil); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("actor %s: %v", a.ActorID, err))
			continue
		}
		report.Successful++
	}
	return nil
}

func (s *Service) applyTeams(ctx context.Context, obj *objective.Objective, candidates []*actor.Actor, in Input, report *Report) error {
	byID := make(map[uuid.UUID]*actor.Actor, len(candidates))
	ids := make([]uuid.UUID, len(candidates))
	for i, a := range candidates {
		ids[i] = a.ActorID
		byID[a.ActorID] = a
	}

	teams, err := s.teams.FormTeams(ctx, obj.ObjectiveID, ids, in.TeamSize, teamform.Options{
		MergeRemainderBelow: in.MergeRemainderBelow,
	})
	if err != nil {
		return err
	}
	report.TeamsCreated = len(teams)

	for _, tm := range teams {
		// The leader applies first; a member's failure never takes the
		// whole team down.
		for _, memberID := range tm.MemberIDs {
			teamID := tm.TeamID
			if err := s.createApplication(ctx, obj, byID[memberID], &teamID); err != nil {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("actor %s (team %s): %v", memberID, tm.Name, err))
				continue
			}
			report.Successful++
		}
	}
	return nil
}

func (s *Service) createApplication(ctx context.Context, obj *objective.Objective, a *actor.Actor, teamID *uuid.UUID) error {
	data, err := s.gen.ApplicationData(ctx, a.Character, obj.Title)
	if err != nil {
		return err
	}
	return s.objectives.CreateApplication(ctx, &objective.Application{
		ApplicationID: uuid.New(),
		ObjectiveID:   obj.ObjectiveID,
		ActorID:       a.ActorID,
		TeamID:        teamID,
		Status:        objective.StatusAutoAccepted,
		Motivation:    data.Motivation,
		Skills:        data.Skills,
		CreatedAt:     time.Now().UTC(),
	})
}
